package rewards

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/crumble/internal/progression"
)

type countingRecorder struct {
	calls atomic.Int32
	err   error
}

func (c *countingRecorder) RecordClaim(_ context.Context, _ int) error {
	c.calls.Add(1)
	return c.err
}

func TestClaim_Twice(t *testing.T) {
	ctx := context.Background()
	l := Build(250, nil, nil)

	r, err := l.Claim(ctx, 1)
	require.NoError(t, err)
	assert.True(t, r.Claimed)
	after := l.Rewards()

	_, err = l.Claim(ctx, 1)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, after, l.Rewards(), "failed claim must not change the ledger")
}

func TestClaim_NotUnlocked(t *testing.T) {
	ctx := context.Background()
	l := Build(150, nil, nil)
	before := l.Rewards()

	_, err := l.Claim(ctx, 2)
	assert.ErrorIs(t, err, ErrNotUnlocked)
	assert.Equal(t, before, l.Rewards())
}

func TestClaim_Unknown(t *testing.T) {
	_, err := Build(1000, nil, nil).Claim(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUnknownReward)
}

func TestClaim_PreviouslyClaimed(t *testing.T) {
	l := Build(1000, []int{3}, nil)
	_, err := l.Claim(context.Background(), 3)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestClaim_RecorderErrorLeavesLedgerUnchanged(t *testing.T) {
	rec := &countingRecorder{err: errors.New("disk full")}
	l := Build(1000, nil, rec)
	before := l.Rewards()

	_, err := l.Claim(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, before, l.Rewards())

	rec.err = nil
	r, err := l.Claim(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, r.Claimed)
	assert.Equal(t, int32(2), rec.calls.Load())
}

func TestClaim_ConcurrentAtMostOnce(t *testing.T) {
	rec := &countingRecorder{}
	l := Build(600, nil, rec)

	const workers = 64
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		dupes     atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := l.Claim(context.Background(), 2)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, ErrAlreadyClaimed):
				dupes.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(workers-1), dupes.Load())
	assert.Equal(t, int32(1), rec.calls.Load(), "recorder must run once")
}

func TestRefresh_UnlocksAndNeverRelocks(t *testing.T) {
	l := Build(0, nil, nil)
	for _, r := range l.Rewards() {
		assert.False(t, r.Unlocked, "reward %d", r.ID)
	}

	l.Refresh(300)
	got := map[int]bool{}
	for _, r := range l.Rewards() {
		got[r.ID] = r.Unlocked
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: false}, got)

	l.Refresh(0)
	r, ok := l.Reward(3)
	require.True(t, ok)
	assert.True(t, r.Unlocked)
}

func TestNewLedger_DropsDuplicateIDs(t *testing.T) {
	l := NewLedger([]Reward{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}}, nil)
	rs := l.Rewards()
	require.Len(t, rs, 1)
	assert.Equal(t, "a", rs[0].Title)
}

func TestEvaluateAchievements(t *testing.T) {
	tests := []struct {
		name     string
		progress progression.UserProgress
		coins    int
		want     []AchievementID
	}{
		{"nothing yet", progression.UserProgress{}, 0, nil},
		{"first week", progression.UserProgress{DaysStrong: 7}, 0, []AchievementID{AchievementFirstWeek}},
		{"hundred points", progression.UserProgress{Points: 100}, 0, []AchievementID{AchievementFirstHundred}},
		{"coin only", progression.UserProgress{}, 1, []AchievementID{AchievementFirstCoin}},
		{
			"everything",
			progression.UserProgress{Points: 2000, Streak: 10, DaysStrong: 45, GhostModeDays: 30},
			13,
			[]AchievementID{
				AchievementSevenDayStreak, AchievementThirtyDays, AchievementGhostModeMaster,
				AchievementFirstWeek, AchievementFirstHundred, AchievementFirstCoin,
			},
		},
		{"negative input is zero", progression.UserProgress{Points: -500, DaysStrong: -1}, -3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateAchievements(tt.progress, tt.coins))
		})
	}
}

func TestAchievements_RecomputedNotRemembered(t *testing.T) {
	high := progression.UserProgress{Points: 150, DaysStrong: 8}
	low := progression.UserProgress{Points: 20, DaysStrong: 8}

	completed := func(as []Achievement) map[AchievementID]bool {
		m := map[AchievementID]bool{}
		for _, a := range as {
			m[a.ID] = a.Completed
		}
		return m
	}

	first := completed(Achievements(high))
	assert.True(t, first[AchievementFirstHundred])
	assert.True(t, first[AchievementFirstCoin])

	// Regressed points re-lock point-based achievements.
	second := completed(Achievements(low))
	assert.False(t, second[AchievementFirstHundred])
	assert.False(t, second[AchievementFirstCoin])
	assert.True(t, second[AchievementFirstWeek])
}

func TestReward_Claimable(t *testing.T) {
	assert.True(t, Reward{Unlocked: true}.Claimable())
	assert.False(t, Reward{Unlocked: true, Claimed: true}.Claimable())
	assert.False(t, Reward{}.Claimable())
}
