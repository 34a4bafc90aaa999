package companion

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/crumble/internal/ghost"
	"github.com/abhisek/crumble/internal/progression"
	"github.com/abhisek/crumble/internal/quiz"
	"github.com/abhisek/crumble/internal/rewards"
	"github.com/abhisek/crumble/internal/store"
	"github.com/abhisek/crumble/internal/templates"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:companion_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func newTestService(t *testing.T) (*Service, *store.Store, *fakeClock) {
	t.Helper()
	st := openTestStore(t)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewService("alex", ReposFrom(st), Options{Now: clock.Now})
	return svc, st, clock
}

func seedPoints(t *testing.T, st *store.Store, profile string, points int) {
	t.Helper()
	require.NoError(t, st.ProgressRepo().Save(context.Background(), profile, store.ProgressRecord{Points: points}))
}

func TestSubmitQuiz(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	answers := quiz.AnswerSet{1: "long", 2: "direct", 4: "face", 9: "verbal"}
	out, err := svc.SubmitQuiz(ctx, answers)
	require.NoError(t, err)

	assert.Equal(t, quiz.MethodCall, out.Result.Method)
	assert.Equal(t, 9, out.Result.Scores[quiz.MethodCall])
	assert.NotEmpty(t, out.SubmissionID)
	require.NotNil(t, out.Award)
	assert.Equal(t, progression.AwardQuiz, out.Award.Award)
	assert.Equal(t, 1, out.Award.After.Level)
	assert.Equal(t, 80, out.Award.After.PointsToNextLevel)

	latest, err := st.QuizRepo().Latest(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, out.SubmissionID, latest.ID)
	assert.Equal(t, "face", latest.Answers[4])

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, status.Progress.Points)
	assert.Equal(t, 1, status.Progress.Streak)
	assert.Equal(t, 1, status.Progress.DaysStrong)
	assert.Equal(t, quiz.MethodCall, status.LastMethod)
}

func TestSubmitQuiz_EmptyAnswersRecommendCall(t *testing.T) {
	svc, _, _ := newTestService(t)

	out, err := svc.SubmitQuiz(context.Background(), quiz.AnswerSet{})
	require.NoError(t, err)
	assert.Equal(t, quiz.MethodCall, out.Result.Method)
}

func TestAward_StreakAcrossDays(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	_, err := svc.Affirmation(ctx)
	require.NoError(t, err)
	_, err = svc.Affirmation(ctx)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	res, err := svc.Affirmation(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Award.Streak)

	clock.Advance(72 * time.Hour)
	res, err = svc.Affirmation(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Award.Streak, "a gap restarts the streak")

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, status.Progress.Points)
	assert.Equal(t, 3, status.Progress.DaysStrong)
	assert.Equal(t, "2026-03-05", status.LastActive.Format(store.DayLayout))
}

func TestAward_CalendarDaysInConfiguredZone(t *testing.T) {
	st := openTestStore(t)
	// 20:00 UTC is already the next day at +05:30.
	clock := &fakeClock{t: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	loc := time.FixedZone("IST", 5*3600+1800)
	svc := NewService("alex", ReposFrom(st), Options{Now: clock.Now, Location: loc})
	ctx := context.Background()

	_, err := svc.Award(ctx, progression.AwardTemplate)
	require.NoError(t, err)

	// 23 hours later is 2026-03-03 00:30 local: the next calendar day.
	clock.Advance(23 * time.Hour)
	res, err := svc.Award(ctx, progression.AwardTemplate)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Streak)

	rec, err := st.ProgressRepo().Get(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", rec.LastActive)
}

func TestUseTemplate_CrossesThresholds(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedPoints(t, st, "alex", 95)

	out, err := svc.UseTemplate(ctx, quiz.MethodText, templates.ToneGentle, "Sam")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Message, "Sam,"))
	assert.Equal(t, 10, out.Award.Points)
	assert.True(t, out.Award.LevelUp())
	assert.Equal(t, 2, out.Award.After.Level)

	require.Len(t, out.Award.NewRewards, 1)
	assert.Equal(t, 1, out.Award.NewRewards[0].ID)
	assert.True(t, out.Award.NewRewards[0].Unlocked)

	require.Len(t, out.Award.NewAchievements, 1)
	assert.Equal(t, rewards.AchievementFirstHundred, out.Award.NewAchievements[0].ID)
}

func TestAward_LevelUpLogFields(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(hook.Reset)

	svc, st, _ := newTestService(t)
	seedPoints(t, st, "alex", 95)

	_, err := svc.Award(context.Background(), progression.AwardTemplate)
	require.NoError(t, err)

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Message != "level up" {
			continue
		}
		found = true
		assert.Equal(t, 2, e.Data["user_level"])
		assert.NotContains(t, e.Data, "level", "clashes with the entry level key")
	}
	assert.True(t, found, "level up entry logged")
}

func TestUseTemplate_UnknownToneAwardsNothing(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UseTemplate(ctx, quiz.MethodEmoji, "sarcastic", "")
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Progress.Points)
}

func TestAffirmation_Seeded(t *testing.T) {
	st := openTestStore(t)
	aff := templates.NewAffirmer(rand.New(rand.NewPCG(7, 7)))
	svc := NewService("alex", ReposFrom(st), Options{Affirmer: aff})

	out, err := svc.Affirmation(context.Background())
	require.NoError(t, err)
	assert.True(t, slices.Contains(templates.Affirmations(), out.Text))
	assert.Equal(t, 5, out.Award.Points)
}

func TestClaimReward(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedPoints(t, st, "alex", 250)

	r, err := svc.ClaimReward(ctx, 1)
	require.NoError(t, err)
	assert.True(t, r.Claimed)

	_, err = svc.ClaimReward(ctx, 1)
	assert.ErrorIs(t, err, rewards.ErrAlreadyClaimed)

	_, err = svc.ClaimReward(ctx, 3)
	assert.ErrorIs(t, err, rewards.ErrNotUnlocked)

	_, err = svc.ClaimReward(ctx, 42)
	assert.ErrorIs(t, err, rewards.ErrUnknownReward)

	list, err := svc.Rewards(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.True(t, list[0].Claimed)
	assert.True(t, list[1].Unlocked)
	assert.False(t, list[1].Claimed)
	assert.False(t, list[2].Unlocked)
}

func TestClaimReward_ConcurrentServices(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	seedPoints(t, st, "alex", 600)

	const workers = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		already   atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate services model separate processes sharing the database.
			svc := NewService("alex", ReposFrom(st), Options{})
			_, err := svc.ClaimReward(ctx, 4)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, rewards.ErrAlreadyClaimed):
				already.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(workers-1), already.Load())

	ids, err := st.ClaimRepo().ClaimedIDs(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, ids)
}

func TestGhostMode_CountsDistinctDays(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	settings, err := svc.GhostSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.Active())

	settings, err = svc.SetGhostToggle(ctx, ghost.HideStatus, true)
	require.NoError(t, err)
	assert.True(t, settings[ghost.HideStatus])

	// Same day again.
	_, err = svc.Status(ctx)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Progress.GhostModeDays)
	assert.True(t, status.Ghost[ghost.HideStatus])

	_, err = svc.SetGhostToggle(ctx, ghost.HideStatus, false)
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Progress.GhostModeDays, "days with ghost mode off do not count")
}

func TestGhostMode_UnknownToggle(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.SetGhostToggle(context.Background(), "invisible", true)
	assert.ErrorIs(t, err, ghost.ErrUnknownToggle)
}

func TestPlatforms_Persisted(t *testing.T) {
	svc, st, clock := newTestService(t)
	ctx := context.Background()

	p, err := svc.ConnectPlatform(ctx, "snapchat", ghost.Credentials{Username: "alex_x", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Snapchat", p.Name)
	assert.True(t, p.ConnectedAt.Equal(clock.Now()))

	_, err = svc.ConnectPlatform(ctx, "Snapchat", ghost.Credentials{Username: "alex_x", Password: "secret"})
	assert.ErrorIs(t, err, ghost.ErrAlreadyConnected)

	_, err = svc.ConnectPlatform(ctx, "Instagram", ghost.Credentials{Username: "alex_x"})
	assert.ErrorIs(t, err, ghost.ErrMissingCredentials)

	// A fresh service reads the stored record.
	other := NewService("alex", ReposFrom(st), Options{})
	list, err := other.Platforms(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(ghost.KnownPlatforms))
	for _, p := range list {
		assert.Equal(t, p.Name == "Snapchat", p.Connected, p.Name)
	}

	p, err = other.DisconnectPlatform(ctx, "SNAPCHAT")
	require.NoError(t, err)
	assert.False(t, p.Connected)
	assert.Equal(t, "alex_x", p.Username, "record is kept")

	_, err = other.DisconnectPlatform(ctx, "snapchat")
	assert.ErrorIs(t, err, ghost.ErrNotConnected)

	_, err = other.DisconnectPlatform(ctx, "instagram")
	assert.ErrorIs(t, err, ghost.ErrNotConnected)
	recs, err := st.GhostRepo().Platforms(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, recs, 1, "nothing stored for a platform never connected")
	assert.Equal(t, "Snapchat", recs[0].Name)

	_, err = other.DisconnectPlatform(ctx, "Myspace")
	assert.ErrorIs(t, err, ghost.ErrUnknownPlatform)
}

func TestHistoryAndReset(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Award(ctx, progression.AwardQuiz)
	require.NoError(t, err)
	_, err = svc.Award(ctx, progression.AwardTemplate)
	require.NoError(t, err)

	events, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "template", events[0].Award)
	assert.Equal(t, "quiz", events[1].Award)

	require.NoError(t, svc.Reset(ctx))

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Progress.Points)
	assert.Empty(t, status.LastMethod)

	events, err = svc.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

type failingProgressRepo struct{}

func (failingProgressRepo) Get(context.Context, string) (*store.ProgressRecord, error) {
	return nil, nil
}

func (failingProgressRepo) Save(context.Context, string, store.ProgressRecord) error {
	return errors.New("disk full")
}

func TestAward_SaveErrorIsReturned(t *testing.T) {
	st := openTestStore(t)
	repos := ReposFrom(st)
	repos.Progress = failingProgressRepo{}
	svc := NewService("alex", repos, Options{})

	_, err := svc.Affirmation(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	events, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, events, "no history for a failed award")
}

func TestSubmitQuiz_AwardFailureKeepsSubmission(t *testing.T) {
	st := openTestStore(t)
	repos := ReposFrom(st)
	repos.Progress = failingProgressRepo{}
	svc := NewService("alex", repos, Options{})
	ctx := context.Background()

	out, err := svc.SubmitQuiz(ctx, quiz.AnswerSet{4: "written"})
	require.NoError(t, err)
	assert.Nil(t, out.Award, "no points recorded")
	assert.Equal(t, quiz.MethodText, out.Result.Method)

	latest, err := st.QuizRepo().Latest(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, out.SubmissionID, latest.ID)

	events, err := svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}
