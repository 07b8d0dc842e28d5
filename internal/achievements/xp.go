package achievements

import "math"

const (
	baseMasteryXP = 15
	// maxStreakMultiplier caps the streak bonus at +50%.
	maxStreakMultiplier = 1.5
)

// LevelForXP returns the level reached with xp total experience. Level n
// starts at (n-1)² × 100 XP.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	level := int(math.Floor(1 + math.Sqrt(float64(xp)/100)))
	// Guard against float rounding near a perfect square.
	for XPForLevel(level+1) <= xp {
		level++
	}
	for level > 1 && XPForLevel(level) > xp {
		level--
	}
	return level
}

// XPForLevel returns the total experience at which level starts.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// MasteryXP is awarded the first time a pattern is completed. Longer patterns
// are worth more: half the token count is the multiplier, never below 1.
func MasteryXP(length, catches int) int {
	complexity := math.Max(1, float64(length)*0.5)
	bonus := (catches / 10) * 5
	return int(math.Round(float64(baseMasteryXP+bonus) * complexity))
}

// ImprovementXP is awarded for raising a pattern's best count.
func ImprovementXP(improvement int) int {
	if improvement <= 0 {
		return 0
	}
	return improvement * 2
}

// WithStreakBonus adds 5% per streak day, capped at 50%. Streaks shorter than
// two days earn nothing extra.
func WithStreakBonus(xp, streakDays int) int {
	if streakDays < 2 {
		return xp
	}
	mult := math.Min(maxStreakMultiplier, 1+float64(streakDays)*0.05)
	return int(math.Round(float64(xp) * mult))
}
