package progression

import (
	"testing"
	"time"
)

func TestDeriveLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{-10, 1}, {0, 1}, {99, 1},
		{100, 2}, {299, 2},
		{300, 3}, {599, 3},
		{600, 4}, {999, 4},
		{1000, 5}, {25000, 5},
	}
	for _, tt := range tests {
		if got := DeriveLevel(tt.points); got != tt.want {
			t.Errorf("DeriveLevel(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestDeriveLevel_Monotonic(t *testing.T) {
	prev := DeriveLevel(0)
	for p := 1; p <= 3000; p++ {
		l := DeriveLevel(p)
		if l < prev {
			t.Fatalf("DeriveLevel(%d) = %d < DeriveLevel(%d) = %d", p, l, p-1, prev)
		}
		prev = l
	}
}

func TestNextLevelThreshold(t *testing.T) {
	tests := []struct {
		level, points, want int
	}{
		{1, 0, 100},
		{2, 150, 300},
		{3, 450, 600},
		{4, 999, 1000},
		{5, 1000, 1500},
		{5, 4321, 4821},
		{0, 0, 100},
	}
	for _, tt := range tests {
		if got := NextLevelThreshold(tt.level, tt.points); got != tt.want {
			t.Errorf("NextLevelThreshold(%d, %d) = %d, want %d", tt.level, tt.points, got, tt.want)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		points int
		want   float64
	}{
		{0, 0},
		{50, 50},
		{150, 50},
		{200, 66.67},
		{1000, 66.67},
		{-5, 0},
	}
	for _, tt := range tests {
		got := ProgressPercent(tt.points, DeriveLevel(tt.points))
		if got != tt.want {
			t.Errorf("ProgressPercent(%d) = %v, want %v", tt.points, got, tt.want)
		}
	}
}

func TestProgressPercent_Clamped(t *testing.T) {
	// Points past the level's threshold (level passed in stale) clamp to 100.
	if got := ProgressPercent(500, 1); got != 100 {
		t.Errorf("ProgressPercent(500, 1) = %v, want 100", got)
	}
}

func TestCrumbleCoins(t *testing.T) {
	tests := []struct{ points, want int }{
		{0, 0}, {149, 0}, {150, 1}, {299, 1}, {300, 2}, {1499, 9}, {-150, 0},
	}
	for _, tt := range tests {
		if got := CrumbleCoins(tt.points); got != tt.want {
			t.Errorf("CrumbleCoins(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestHealingProgressPercent(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{0, 0}, {1, 3.33}, {15, 50}, {20, 66.67}, {30, 100}, {60, 100}, {-3, 0},
	}
	for _, tt := range tests {
		if got := HealingProgressPercent(tt.days); got != tt.want {
			t.Errorf("HealingProgressPercent(%d) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestDerive(t *testing.T) {
	d := Derive(UserProgress{Points: 320, DaysStrong: 15})
	want := DerivedState{
		Level:              3,
		NextLevelThreshold: 600,
		PointsToNextLevel:  280,
		ProgressPercent:    53.33,
		CrumbleCoins:       2,
		HealingPercent:     50,
	}
	if d != want {
		t.Errorf("Derive = %+v, want %+v", d, want)
	}
}

func TestDerive_MaxLevelAlwaysShows500ToGo(t *testing.T) {
	for _, pts := range []int{1000, 1234, 99999} {
		d := Derive(UserProgress{Points: pts})
		if d.PointsToNextLevel != 500 {
			t.Errorf("points %d: PointsToNextLevel = %d, want 500", pts, d.PointsToNextLevel)
		}
	}
}

func TestAwardPoints(t *testing.T) {
	if AwardTemplate.Points() != 10 || AwardQuiz.Points() != 20 || AwardAffirmation.Points() != 5 {
		t.Errorf("award points = %d/%d/%d, want 10/20/5",
			AwardTemplate.Points(), AwardQuiz.Points(), AwardAffirmation.Points())
	}
	if Award("bogus").Points() != 0 {
		t.Error("unknown award should be worth 0")
	}
}

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestApplyPoints_FirstActivity(t *testing.T) {
	got := ApplyPoints(Activity{}, 10, day(1, 9))
	if got.Progress.Points != 10 || got.Progress.Streak != 1 || got.Progress.DaysStrong != 1 {
		t.Errorf("progress = %+v, want points 10 streak 1 days 1", got.Progress)
	}
	if !got.LastActive.Equal(day(1, 0)) {
		t.Errorf("LastActive = %v, want %v", got.LastActive, day(1, 0))
	}
}

func TestApplyPoints_SameDay(t *testing.T) {
	a := Activity{Progress: UserProgress{Points: 10, Streak: 3, DaysStrong: 5}, LastActive: day(1, 0)}
	got := ApplyPoints(a, 20, day(1, 22))
	if got.Progress.Points != 30 || got.Progress.Streak != 3 || got.Progress.DaysStrong != 5 {
		t.Errorf("progress = %+v, want points 30 streak 3 days 5", got.Progress)
	}
}

func TestApplyPoints_NextDay(t *testing.T) {
	a := Activity{Progress: UserProgress{Points: 10, Streak: 3, DaysStrong: 5}, LastActive: day(1, 0)}
	got := ApplyPoints(a, 5, day(2, 1))
	if got.Progress.Streak != 4 || got.Progress.DaysStrong != 6 {
		t.Errorf("progress = %+v, want streak 4 days 6", got.Progress)
	}
	if !got.LastActive.Equal(day(2, 0)) {
		t.Errorf("LastActive = %v, want %v", got.LastActive, day(2, 0))
	}
}

func TestApplyPoints_GapBreaksStreak(t *testing.T) {
	a := Activity{Progress: UserProgress{Points: 10, Streak: 9, DaysStrong: 12}, LastActive: day(1, 0)}
	got := ApplyPoints(a, 10, day(5, 12))
	if got.Progress.Streak != 1 || got.Progress.DaysStrong != 13 {
		t.Errorf("progress = %+v, want streak 1 days 13", got.Progress)
	}
}

func TestApplyPoints_NonPositiveDeltaLeavesStreak(t *testing.T) {
	a := Activity{Progress: UserProgress{Points: 10, Streak: 2, DaysStrong: 2}, LastActive: day(1, 0)}
	got := ApplyPoints(a, -50, day(9, 0))
	if got.Progress.Points != 0 {
		t.Errorf("points = %d, want 0 (clamped)", got.Progress.Points)
	}
	if got.Progress.Streak != 2 || got.Progress.DaysStrong != 2 {
		t.Errorf("progress = %+v, streak/days should be unchanged", got.Progress)
	}
	if !got.LastActive.Equal(a.LastActive) {
		t.Errorf("LastActive moved to %v", got.LastActive)
	}
}

func TestApplyPoints_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 20:00 UTC on the 1st is already the 2nd in UTC+10.
	last := time.Date(2026, time.March, 1, 0, 0, 0, 0, loc)
	now := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC).In(loc)
	a := Activity{Progress: UserProgress{Streak: 1, DaysStrong: 1}, LastActive: last}
	got := ApplyPoints(a, 10, now)
	if got.Progress.Streak != 2 {
		t.Errorf("streak = %d, want 2", got.Progress.Streak)
	}
}
