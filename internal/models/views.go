package models

import "time"

// StatsView is the read shape returned to the app after every stats
// operation: raw counters plus the derived level progression fields.
type StatsView struct {
	Level                int `json:"level"`
	XP                   int `json:"xp"`
	TotalJumps           int `json:"total_jumps"`
	TotalArmCircles      int `json:"total_arm_circles"`
	TotalHighKnees       int `json:"total_high_knees"`
	TotalSideReaches     int `json:"total_side_reaches"`
	TotalJackJumps       int `json:"total_jack_jumps"`
	TotalBicepsCurls     int `json:"total_biceps_curls"`
	TotalShoulderPresses int `json:"total_shoulder_presses"`
	TotalSquats          int `json:"total_squats"`
	TotalReps            int `json:"total_reps"`
	ExercisesCompleted   int `json:"exercises_completed"`
	XPToNextLevel        int `json:"xp_to_next_level"`
	CurrentLevelXP       int `json:"current_level_xp"`
}

// SessionView is the history shape returned by the sessions query.
type SessionView struct {
	ID              string    `json:"id"`
	ExerciseType    string    `json:"exercise_type"`
	RepsCompleted   int       `json:"reps_completed"`
	XPEarned        int       `json:"xp_earned"`
	SessionDuration int       `json:"session_duration"`
	CompletedAt     time.Time `json:"completed_at"`
}
