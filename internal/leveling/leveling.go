// Package leveling holds the XP-to-level math. Everything here is pure
// arithmetic over non-negative xp; callers guarantee the input range.
package leveling

// XPPerLevel is the amount of experience in every level band.
const XPPerLevel = 100

// Level is the tier reached at xp, one tier per XPPerLevel.
func Level(xp int) int {
	return xp / XPPerLevel
}

// CurrentLevelXP is the progress inside the current level band.
func CurrentLevelXP(xp int) int {
	return xp % XPPerLevel
}

// XPToNextLevel is the amount remaining until the next level. At an exact
// level boundary (including xp=0) a full band remains, so this returns
// XPPerLevel rather than 0.
func XPToNextLevel(xp int) int {
	return XPPerLevel - CurrentLevelXP(xp)
}
