package repository

import (
	"context"

	"github.com/ErkinAl/MuvTimeBack/internal/models"
)

type UserStatsRepository struct {
	db DBTX
}

func NewUserStatsRepository(db DBTX) *UserStatsRepository {
	return &UserStatsRepository{db: db}
}

const userStatsColumns = `
	id, user_id, xp, level,
	total_jumps, total_arm_circles, total_high_knees, total_side_reaches,
	total_jack_jumps, total_biceps_curls, total_shoulder_presses, total_squats,
	exercises_completed, created_at, updated_at`

func (r *UserStatsRepository) GetByUserID(ctx context.Context, userID string) (*models.UserStats, error) {
	query := `
		SELECT ` + userStatsColumns + `
		FROM user_stats
		WHERE user_id = $1
	`
	var stats models.UserStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.ID,
		&stats.UserID,
		&stats.XP,
		&stats.Level,
		&stats.TotalJumps,
		&stats.TotalArmCircles,
		&stats.TotalHighKnees,
		&stats.TotalSideReaches,
		&stats.TotalJackJumps,
		&stats.TotalBicepsCurls,
		&stats.TotalShoulderPresses,
		&stats.TotalSquats,
		&stats.ExercisesCompleted,
		&stats.CreatedAt,
		&stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *UserStatsRepository) Create(ctx context.Context, stats *models.UserStats) error {
	query := `
		INSERT INTO user_stats (` + userStatsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(
		ctx,
		query,
		stats.ID,
		stats.UserID,
		stats.XP,
		stats.Level,
		stats.TotalJumps,
		stats.TotalArmCircles,
		stats.TotalHighKnees,
		stats.TotalSideReaches,
		stats.TotalJackJumps,
		stats.TotalBicepsCurls,
		stats.TotalShoulderPresses,
		stats.TotalSquats,
		stats.ExercisesCompleted,
		stats.CreatedAt,
		stats.UpdatedAt,
	)
	return err
}

// Update overwrites the full stats row keyed by id. Concurrency control is
// the store's: last writer wins, no version token.
func (r *UserStatsRepository) Update(ctx context.Context, stats *models.UserStats) error {
	query := `
		UPDATE user_stats
		SET user_id = $2, xp = $3, level = $4,
		    total_jumps = $5, total_arm_circles = $6, total_high_knees = $7,
		    total_side_reaches = $8, total_jack_jumps = $9, total_biceps_curls = $10,
		    total_shoulder_presses = $11, total_squats = $12,
		    exercises_completed = $13, updated_at = $14
		WHERE id = $1
	`
	_, err := r.db.Exec(
		ctx,
		query,
		stats.ID,
		stats.UserID,
		stats.XP,
		stats.Level,
		stats.TotalJumps,
		stats.TotalArmCircles,
		stats.TotalHighKnees,
		stats.TotalSideReaches,
		stats.TotalJackJumps,
		stats.TotalBicepsCurls,
		stats.TotalShoulderPresses,
		stats.TotalSquats,
		stats.ExercisesCompleted,
		stats.UpdatedAt,
	)
	return err
}
