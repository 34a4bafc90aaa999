package progression

// UserProgress is the per-user counter state mirrored from the backend.
// Points and DaysStrong only grow from the client's point of view.
type UserProgress struct {
	Points     int  `json:"points"`
	Streak     int  `json:"streak"`
	DaysStrong int  `json:"days_strong"`
	IsPremium  bool `json:"is_premium"`

	// GhostModeDays counts distinct days with any ghost-mode toggle enabled.
	GhostModeDays int `json:"ghost_mode_days"`
}

// Normalized returns a copy with negative counters clamped to zero.
func (p UserProgress) Normalized() UserProgress {
	p.Points = nonNegative(p.Points)
	p.Streak = nonNegative(p.Streak)
	p.DaysStrong = nonNegative(p.DaysStrong)
	p.GhostModeDays = nonNegative(p.GhostModeDays)
	return p
}

// DerivedState is computed from UserProgress on every read and never stored.
type DerivedState struct {
	Level              int     `json:"level"`
	NextLevelThreshold int     `json:"next_level_threshold"`
	PointsToNextLevel  int     `json:"points_to_next_level"`
	ProgressPercent    float64 `json:"progress_percent"`
	CrumbleCoins       int     `json:"crumble_coins"`
	HealingPercent     float64 `json:"healing_percent"`
}

// Derive computes the derived view of p.
func Derive(p UserProgress) DerivedState {
	p = p.Normalized()
	level := DeriveLevel(p.Points)
	next := NextLevelThreshold(level, p.Points)
	return DerivedState{
		Level:              level,
		NextLevelThreshold: next,
		PointsToNextLevel:  nonNegative(next - p.Points),
		ProgressPercent:    ProgressPercent(p.Points, level),
		CrumbleCoins:       CrumbleCoins(p.Points),
		HealingPercent:     HealingProgressPercent(p.DaysStrong),
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
