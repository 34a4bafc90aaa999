package progression

import "time"

// Award identifies a UI action that earns points.
type Award string

const (
	AwardTemplate    Award = "template"
	AwardQuiz        Award = "quiz"
	AwardAffirmation Award = "affirmation"
)

// Points returns the fixed number of points the award is worth.
func (a Award) Points() int {
	switch a {
	case AwardTemplate:
		return 10
	case AwardQuiz:
		return 20
	case AwardAffirmation:
		return 5
	default:
		return 0
	}
}

// Activity is the progress state plus the last day the user earned points.
// LastActive is zero when the user has never been active.
type Activity struct {
	Progress   UserProgress
	LastActive time.Time
}

// ApplyPoints adds delta points at time now and updates the streak:
//   - first activity, or again on the same day: streak and days strong are at least 1
//   - the day after the last activity: both grow by one
//   - after a gap of more than a day: streak restarts at 1, days strong grows by one
//
// Non-positive deltas change points only. Calendar days are taken in now's location.
func ApplyPoints(a Activity, delta int, now time.Time) Activity {
	p := a.Progress.Normalized()
	p.Points = nonNegative(p.Points + delta)
	if delta <= 0 {
		return Activity{Progress: p, LastActive: a.LastActive}
	}

	today := calendarDay(now, now.Location())
	if a.LastActive.IsZero() {
		p.Streak = max(1, p.Streak)
		p.DaysStrong = max(1, p.DaysStrong)
		return Activity{Progress: p, LastActive: today}
	}

	last := calendarDay(a.LastActive, now.Location())
	switch gap := daysBetween(last, today); {
	case gap == 1:
		p.Streak++
		p.DaysStrong++
	case gap > 1:
		p.Streak = 1
		p.DaysStrong++
	default:
		// Same day, or a clock that moved backwards.
		p.Streak = max(1, p.Streak)
		p.DaysStrong = max(1, p.DaysStrong)
	}
	if today.After(last) {
		last = today
	}
	return Activity{Progress: p, LastActive: last}
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
