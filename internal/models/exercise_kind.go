package models

import "strings"

// ExerciseKind is the closed set of exercises the app tracks. Each kind
// owns one cumulative repetition counter on UserStats.
type ExerciseKind string

const (
	KindJump          ExerciseKind = "jump"
	KindArmCircles    ExerciseKind = "arm_circles"
	KindHighKnees     ExerciseKind = "high_knees"
	KindSideReaches   ExerciseKind = "side_reaches"
	KindJackJumps     ExerciseKind = "jack_jumps"
	KindBicepsCurls   ExerciseKind = "biceps_curls"
	KindShoulderPress ExerciseKind = "shoulder_presses"
	KindSquats        ExerciseKind = "squats"
)

// ExerciseKinds lists every tracked kind in a stable order.
var ExerciseKinds = []ExerciseKind{
	KindJump,
	KindArmCircles,
	KindHighKnees,
	KindSideReaches,
	KindJackJumps,
	KindBicepsCurls,
	KindShoulderPress,
	KindSquats,
}

// ParseExerciseKind maps a client-supplied exercise type string to a kind.
// Matching is case-insensitive and tolerant of separator variants
// ("arm-circles", "arm circles", "arm_circles"). Unrecognized values fall
// back to the jump counter; the client historically sent "jump_counter"
// for everything, so unknown types are counted rather than rejected.
func ParseExerciseKind(exerciseType string) ExerciseKind {
	switch normalizeKind(exerciseType) {
	case "jump", "jumps", "jump_counter":
		return KindJump
	case "arm_circle", "arm_circles":
		return KindArmCircles
	case "high_knee", "high_knees":
		return KindHighKnees
	case "side_reach", "side_reaches":
		return KindSideReaches
	case "jack_jump", "jack_jumps":
		return KindJackJumps
	case "biceps_curl", "biceps_curls", "bicep_curl", "bicep_curls":
		return KindBicepsCurls
	case "shoulder_press", "shoulder_presses":
		return KindShoulderPress
	case "squat", "squats":
		return KindSquats
	default:
		return KindJump
	}
}

func normalizeKind(value string) string {
	normalized := strings.TrimSpace(strings.ToLower(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	return normalized
}
