package models

import "time"

// UserStats is the single aggregate row tracking a user's lifetime
// progression. Exactly one row exists per user (enforced by a UNIQUE
// constraint on user_id); reset zeroes the counters but never deletes
// the row.
type UserStats struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	XP                   int       `json:"xp"`
	Level                int       `json:"level"`
	TotalJumps           int       `json:"total_jumps"`
	TotalArmCircles      int       `json:"total_arm_circles"`
	TotalHighKnees       int       `json:"total_high_knees"`
	TotalSideReaches     int       `json:"total_side_reaches"`
	TotalJackJumps       int       `json:"total_jack_jumps"`
	TotalBicepsCurls     int       `json:"total_biceps_curls"`
	TotalShoulderPresses int       `json:"total_shoulder_presses"`
	TotalSquats          int       `json:"total_squats"`
	ExercisesCompleted   int       `json:"exercises_completed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CounterFor returns the cumulative repetition count for one kind.
func (s *UserStats) CounterFor(kind ExerciseKind) int {
	switch kind {
	case KindArmCircles:
		return s.TotalArmCircles
	case KindHighKnees:
		return s.TotalHighKnees
	case KindSideReaches:
		return s.TotalSideReaches
	case KindJackJumps:
		return s.TotalJackJumps
	case KindBicepsCurls:
		return s.TotalBicepsCurls
	case KindShoulderPress:
		return s.TotalShoulderPresses
	case KindSquats:
		return s.TotalSquats
	default:
		return s.TotalJumps
	}
}

// AddReps adds reps to the counter owned by kind.
func (s *UserStats) AddReps(kind ExerciseKind, reps int) {
	switch kind {
	case KindArmCircles:
		s.TotalArmCircles += reps
	case KindHighKnees:
		s.TotalHighKnees += reps
	case KindSideReaches:
		s.TotalSideReaches += reps
	case KindJackJumps:
		s.TotalJackJumps += reps
	case KindBicepsCurls:
		s.TotalBicepsCurls += reps
	case KindShoulderPress:
		s.TotalShoulderPresses += reps
	case KindSquats:
		s.TotalSquats += reps
	default:
		s.TotalJumps += reps
	}
}

// TotalReps sums the counters across every kind.
func (s *UserStats) TotalReps() int {
	total := 0
	for _, kind := range ExerciseKinds {
		total += s.CounterFor(kind)
	}
	return total
}

// ZeroCounters clears xp, level, every per-kind counter and the completed
// counter. Timestamps are left for the caller to touch.
func (s *UserStats) ZeroCounters() {
	s.XP = 0
	s.Level = 0
	s.TotalJumps = 0
	s.TotalArmCircles = 0
	s.TotalHighKnees = 0
	s.TotalSideReaches = 0
	s.TotalJackJumps = 0
	s.TotalBicepsCurls = 0
	s.TotalShoulderPresses = 0
	s.TotalSquats = 0
	s.ExercisesCompleted = 0
}
