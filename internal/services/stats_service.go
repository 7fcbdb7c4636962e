package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ErkinAl/MuvTimeBack/internal/leveling"
	"github.com/ErkinAl/MuvTimeBack/internal/models"
	"github.com/ErkinAl/MuvTimeBack/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrEmptyUserID = errors.New("user id is required")

// maxRecentSessions caps the history query. The contract is a fixed
// window of the 10 newest sessions, not caller-configurable.
const maxRecentSessions = 10

type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// StatsService is the stats aggregation and leveling engine. It owns the
// get-or-create lifecycle of a user's stats row, applies exercise updates,
// and records session history. All cross-request state lives in the store;
// the service itself is stateless and safe for concurrent use.
type StatsService struct {
	db          txStarter
	statsRepo   *repository.UserStatsRepository
	profileRepo *repository.UserProfileRepository
	sessionRepo *repository.ExerciseSessionRepository
}

func NewStatsService(
	db txStarter,
	statsRepo *repository.UserStatsRepository,
	profileRepo *repository.UserProfileRepository,
	sessionRepo *repository.ExerciseSessionRepository,
) *StatsService {
	return &StatsService{
		db:          db,
		statsRepo:   statsRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
	}
}

type UpdateStatsInput struct {
	ExerciseType    string
	RepsCompleted   int
	XPEarned        int
	SessionDuration int
}

// GetStats returns the user's current stats view. Reading a brand-new
// user lazily creates their zeroed stats row, so even a GET can write.
func (s *StatsService) GetStats(ctx context.Context, userID string) (*models.StatsView, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.getOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return statsViewFor(stats), nil
}

// UpdateStats applies one completed exercise activity: the matching kind
// counter grows by the reps, exercises_completed by one, xp by the earned
// amount, and the level is rederived. The stats overwrite and the new
// session row commit in a single transaction so history never drifts from
// the aggregate. Numeric inputs are trusted as-is.
func (s *StatsService) UpdateStats(
	ctx context.Context,
	userID string,
	input UpdateStatsInput,
) (*models.StatsView, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.getOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	kind := models.ParseExerciseKind(input.ExerciseType)
	stats.AddReps(kind, input.RepsCompleted)
	stats.ExercisesCompleted++
	stats.XP += input.XPEarned
	if stats.XP < 0 {
		stats.XP = 0
	}
	stats.Level = leveling.Level(stats.XP)

	now := time.Now().UTC()
	stats.UpdatedAt = now

	exerciseType := strings.TrimSpace(input.ExerciseType)
	if exerciseType == "" {
		exerciseType = string(kind)
	}
	session := &models.ExerciseSession{
		ID:              uuid.NewString(),
		UserID:          userID,
		ExerciseType:    exerciseType,
		RepsCompleted:   input.RepsCompleted,
		XPEarned:        input.XPEarned,
		SessionDuration: input.SessionDuration,
		CompletedAt:     now,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := repository.NewUserStatsRepository(tx).Update(ctx, stats); err != nil {
		return nil, err
	}
	if err := repository.NewExerciseSessionRepository(tx).Create(ctx, session); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return statsViewFor(stats), nil
}

// GetSessions returns the user's most recent sessions, newest first,
// capped at 10.
func (s *StatsService) GetSessions(ctx context.Context, userID string) ([]models.SessionView, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListRecentByUserID(ctx, userID, maxRecentSessions)
	if err != nil {
		return nil, err
	}

	views := make([]models.SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, models.SessionView{
			ID:              session.ID,
			ExerciseType:    session.ExerciseType,
			RepsCompleted:   session.RepsCompleted,
			XPEarned:        session.XPEarned,
			SessionDuration: session.SessionDuration,
			CompletedAt:     session.CompletedAt,
		})
	}
	return views, nil
}

// ResetStats zeroes xp, level and every counter. The stats row survives
// and prior session history stays queryable.
func (s *StatsService) ResetStats(ctx context.Context, userID string) (*models.StatsView, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.getOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats.ZeroCounters()
	stats.UpdatedAt = time.Now().UTC()

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, err
	}
	return statsViewFor(stats), nil
}

// InitializeStats is the first-app-launch entry point: it provisions the
// user profile when absent and runs the usual stats get-or-create. Calling
// it again is a no-op on the profile and never resets existing stats.
func (s *StatsService) InitializeStats(
	ctx context.Context,
	userID string,
	displayName string,
	email string,
) (*models.StatsView, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}

	_, err = s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		now := time.Now().UTC()
		profile := &models.UserProfile{
			ID:          userID,
			DisplayName: displayName,
			Email:       email,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		// A concurrent initialize winning the insert counts as already
		// provisioned, not a failure.
		if err := s.profileRepo.Create(ctx, profile); err != nil && !isUniqueViolation(err) {
			return nil, err
		}
	}

	stats, err := s.getOrCreateStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return statsViewFor(stats), nil
}

// getOrCreateStats fetches the user's stats row, inserting a zeroed one on
// first touch. The user_stats UNIQUE(user_id) constraint closes the
// read-then-insert race: losing the insert means another request created
// the row first, so it is refetched and used.
func (s *StatsService) getOrCreateStats(ctx context.Context, userID string) (*models.UserStats, error) {
	stats, err := s.statsRepo.GetByUserID(ctx, userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	fresh := &models.UserStats{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.statsRepo.Create(ctx, fresh); err != nil {
		if isUniqueViolation(err) {
			return s.statsRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return fresh, nil
}

func requireUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrEmptyUserID
	}
	return userID, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func statsViewFor(stats *models.UserStats) *models.StatsView {
	return &models.StatsView{
		Level:                stats.Level,
		XP:                   stats.XP,
		TotalJumps:           stats.TotalJumps,
		TotalArmCircles:      stats.TotalArmCircles,
		TotalHighKnees:       stats.TotalHighKnees,
		TotalSideReaches:     stats.TotalSideReaches,
		TotalJackJumps:       stats.TotalJackJumps,
		TotalBicepsCurls:     stats.TotalBicepsCurls,
		TotalShoulderPresses: stats.TotalShoulderPresses,
		TotalSquats:          stats.TotalSquats,
		TotalReps:            stats.TotalReps(),
		ExercisesCompleted:   stats.ExercisesCompleted,
		XPToNextLevel:        leveling.XPToNextLevel(stats.XP),
		CurrentLevelXP:       leveling.CurrentLevelXP(stats.XP),
	}
}
