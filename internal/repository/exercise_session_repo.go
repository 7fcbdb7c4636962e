package repository

import (
	"context"

	"github.com/ErkinAl/MuvTimeBack/internal/models"
)

type ExerciseSessionRepository struct {
	db DBTX
}

func NewExerciseSessionRepository(db DBTX) *ExerciseSessionRepository {
	return &ExerciseSessionRepository{db: db}
}

func (r *ExerciseSessionRepository) Create(ctx context.Context, session *models.ExerciseSession) error {
	query := `
		INSERT INTO exercise_sessions (id, user_id, exercise_type, reps_completed, xp_earned, session_duration, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.ExerciseType,
		session.RepsCompleted,
		session.XPEarned,
		session.SessionDuration,
		session.CompletedAt,
	)
	return err
}

// ListRecentByUserID returns the user's newest sessions, completed_at
// descending, capped at limit.
func (r *ExerciseSessionRepository) ListRecentByUserID(
	ctx context.Context,
	userID string,
	limit int,
) ([]models.ExerciseSession, error) {
	query := `
		SELECT id, user_id, exercise_type, reps_completed, xp_earned, session_duration, completed_at
		FROM exercise_sessions
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.ExerciseSession, 0)
	for rows.Next() {
		var session models.ExerciseSession
		if err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.ExerciseType,
			&session.RepsCompleted,
			&session.XPEarned,
			&session.SessionDuration,
			&session.CompletedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
