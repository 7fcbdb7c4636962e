package models

import "time"

// ExerciseSession is one immutable history record of a completed exercise
// activity. Rows are append-only; nothing updates or deletes them.
type ExerciseSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ExerciseType    string    `json:"exercise_type"`
	RepsCompleted   int       `json:"reps_completed"`
	XPEarned        int       `json:"xp_earned"`
	SessionDuration int       `json:"session_duration"`
	CompletedAt     time.Time `json:"completed_at"`
}
