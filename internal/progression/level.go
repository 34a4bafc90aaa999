package progression

import "math"

// MaxLevel is the highest level a user can reach.
const MaxLevel = 5

// maxLevelHeadroom is how far past current points the "next" threshold
// sits once MaxLevel is reached.
const maxLevelHeadroom = 500

// levelThresholds[i] is the points needed to leave level i+1.
var levelThresholds = []int{100, 300, 600, 1000}

// DeriveLevel maps a points total to a level in 1..MaxLevel.
func DeriveLevel(points int) int {
	points = nonNegative(points)
	for i, t := range levelThresholds {
		if points < t {
			return i + 1
		}
	}
	return MaxLevel
}

// NextLevelThreshold returns the points total that completes level.
// At MaxLevel there is no fixed cap, so it is points + 500.
func NextLevelThreshold(level, points int) int {
	if level < 1 {
		level = 1
	}
	if level <= len(levelThresholds) {
		return levelThresholds[level-1]
	}
	return nonNegative(points) + maxLevelHeadroom
}

// ProgressPercent is points as a share of the level's next threshold,
// clamped to [0, 100] and rounded to two decimals.
func ProgressPercent(points, level int) float64 {
	points = nonNegative(points)
	return percent(points, NextLevelThreshold(level, points))
}

// HealingGoalDays is the days-strong milestone that counts as fully healed.
const HealingGoalDays = 30

// HealingProgressPercent is daysStrong against the 30-day goal, clamped to
// [0, 100] and rounded to two decimals.
func HealingProgressPercent(daysStrong int) float64 {
	return percent(nonNegative(daysStrong), HealingGoalDays)
}

func percent(n, of int) float64 {
	if of <= 0 {
		return 0
	}
	p := float64(n) / float64(of) * 100
	if p > 100 {
		p = 100
	}
	return math.Round(p*100) / 100
}
