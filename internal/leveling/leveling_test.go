package leveling

import "testing"

func TestLevelProgression(t *testing.T) {
	cases := []struct {
		xp             int
		level          int
		currentLevelXP int
		xpToNextLevel  int
	}{
		{xp: 0, level: 0, currentLevelXP: 0, xpToNextLevel: 100},
		{xp: 1, level: 0, currentLevelXP: 1, xpToNextLevel: 99},
		{xp: 50, level: 0, currentLevelXP: 50, xpToNextLevel: 50},
		{xp: 99, level: 0, currentLevelXP: 99, xpToNextLevel: 1},
		{xp: 100, level: 1, currentLevelXP: 0, xpToNextLevel: 100},
		{xp: 101, level: 1, currentLevelXP: 1, xpToNextLevel: 99},
		{xp: 250, level: 2, currentLevelXP: 50, xpToNextLevel: 50},
		{xp: 999, level: 9, currentLevelXP: 99, xpToNextLevel: 1},
		{xp: 1000, level: 10, currentLevelXP: 0, xpToNextLevel: 100},
		{xp: 123456, level: 1234, currentLevelXP: 56, xpToNextLevel: 44},
	}

	for _, tc := range cases {
		if got := Level(tc.xp); got != tc.level {
			t.Errorf("Level(%d) = %d, want %d", tc.xp, got, tc.level)
		}
		if got := CurrentLevelXP(tc.xp); got != tc.currentLevelXP {
			t.Errorf("CurrentLevelXP(%d) = %d, want %d", tc.xp, got, tc.currentLevelXP)
		}
		if got := XPToNextLevel(tc.xp); got != tc.xpToNextLevel {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tc.xp, got, tc.xpToNextLevel)
		}
	}
}

func TestBoundaryKeepsFullBandRemaining(t *testing.T) {
	// At an exact level boundary a whole band remains; the calculator
	// must never report 0 xp to the next level.
	for _, xp := range []int{0, 100, 200, 10000} {
		if got := XPToNextLevel(xp); got != XPPerLevel {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", xp, got, XPPerLevel)
		}
	}
}
