package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	tables := []string{
		"progress",
		"reward_claims",
		"quiz_submissions",
		"quiz_responses",
		"ghost_settings",
		"ghost_mode_days",
		"social_platforms",
		"point_events",
		"global_sequence",
	}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/crumble.db"
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ProgressRepo().Save(context.Background(), "p", ProgressRecord{Points: 7}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.ProgressRepo().Get(context.Background(), "p")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 7, rec.Points)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestProgressGetSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "alex")
	require.NoError(t, err)
	assert.Nil(t, rec, "no progress before the first save")

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	want := ProgressRecord{Points: 320, Streak: 4, DaysStrong: 12, IsPremium: true, LastActive: "2026-03-01", UpdatedAt: at}
	require.NoError(t, repo.Save(ctx, "alex", want))

	want.Points = 340
	require.NoError(t, repo.Save(ctx, "alex", want))

	rec, err = repo.Get(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.UpdatedAt.Equal(at))
	rec.UpdatedAt = want.UpdatedAt
	assert.Equal(t, want, *rec)

	other, err := repo.Get(ctx, "sam")
	require.NoError(t, err)
	assert.Nil(t, other, "profiles are isolated")
}

func TestClaimRecordRejectsDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ClaimRepo()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Record(ctx, "alex", 3, now))
	require.NoError(t, repo.Record(ctx, "alex", 1, now))
	require.NoError(t, repo.Record(ctx, "sam", 3, now))

	err := repo.Record(ctx, "alex", 3, now)
	assert.ErrorIs(t, err, ErrDuplicateClaim)

	ids, err := repo.ClaimedIDs(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	ids, err = repo.ClaimedIDs(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestQuizSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx, "alex")
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first, err := repo.Save(ctx, QuizSubmission{
		Profile:   "alex",
		Answers:   map[int]string{1: "long", 4: "face"},
		Method:    "call",
		CreatedAt: base,
	})
	require.NoError(t, err)
	assert.Len(t, first, 36, "uuid string")

	second, err := repo.Save(ctx, QuizSubmission{
		Profile:   "alex",
		Answers:   map[int]string{4: "written"},
		Method:    "text",
		CreatedAt: base.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	latest, err = repo.Latest(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second, latest.ID)
	assert.Equal(t, "text", latest.Method)
	assert.Equal(t, map[int]string{4: "written"}, latest.Answers)
	assert.True(t, latest.CreatedAt.Equal(base.Add(time.Hour)))
}

func TestQuizLatestBreaksTiesBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, method := range []string{"call", "emoji", "text"} {
		_, err := repo.Save(ctx, QuizSubmission{
			Profile:   "alex",
			Answers:   map[int]string{1: "short"},
			Method:    method,
			CreatedAt: at,
		})
		require.NoError(t, err)
	}

	latest, err := repo.Latest(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "text", latest.Method)
}

func TestQuizSaveKeepsGivenID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := "8f1d2c9e-6b0a-4f5e-9a51-3c2d7e4b1a60"

	got, err := s.QuizRepo().Save(ctx, QuizSubmission{ID: id, Profile: "alex", Method: "call"})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = s.QuizRepo().Save(ctx, QuizSubmission{ID: "not-a-uuid", Profile: "alex", Method: "call"})
	assert.Error(t, err)
}

func TestGhostSettingsAndDays(t *testing.T) {
	s := openTestStore(t)
	repo := s.GhostRepo()
	ctx := context.Background()

	got, err := repo.Settings(ctx, "alex")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.SaveSettings(ctx, "alex", map[string]bool{"hideStatus": true, "blockMessages": false}))
	require.NoError(t, repo.SaveSettings(ctx, "alex", map[string]bool{"blockMessages": true}))

	got, err = repo.Settings(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"hideStatus": true, "blockMessages": true}, got)

	for _, day := range []string{"2026-03-01", "2026-03-01", "2026-03-02"} {
		require.NoError(t, repo.RecordDay(ctx, "alex", day))
	}
	n, err := repo.DayCount(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "days are distinct")
}

func TestPlatformsSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.GhostRepo()
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SavePlatform(ctx, "alex", PlatformRecord{Name: "WhatsApp", Connected: true, Username: "kim", ConnectedAt: at}))
	require.NoError(t, repo.SavePlatform(ctx, "alex", PlatformRecord{Name: "Instagram", Connected: true, Username: "sam", ConnectedAt: at}))
	require.NoError(t, repo.SavePlatform(ctx, "alex", PlatformRecord{Name: "Instagram", Connected: false, Username: "sam", ConnectedAt: at}))

	ps, err := repo.Platforms(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Instagram", ps[0].Name)
	assert.False(t, ps[0].Connected)
	assert.Equal(t, "WhatsApp", ps[1].Name)
	assert.True(t, ps[1].ConnectedAt.Equal(at))
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestPointEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []PointEventData{
		{Profile: "alex", Award: "quiz", Points: 20},
		{Profile: "sam", Award: "template", Points: 10},
		{Profile: "alex", Award: "affirmation", Points: 5},
		{Profile: "alex", Award: "template", Points: 10},
	} {
		require.NoError(t, repo.AppendPointEvent(ctx, e))
	}

	all, err := repo.QueryPointEvents(ctx, "alex", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "template", all[0].Award, "newest first")
	assert.Equal(t, int64(4), all[0].Sequence)
	assert.Equal(t, int64(1), all[2].Sequence)

	limited, err := repo.QueryPointEvents(ctx, "alex", QueryOpts{Limit: 1, Before: 4})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "affirmation", limited[0].Award)

	after, err := repo.QueryPointEvents(ctx, "alex", QueryOpts{After: 3})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, 10, after[0].Points)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ProgressRepo().Save(ctx, "alex", ProgressRecord{Points: 50}))
	require.NoError(t, s.ProgressRepo().Save(ctx, "sam", ProgressRecord{Points: 70}))
	require.NoError(t, s.ClaimRepo().Record(ctx, "alex", 1, time.Now()))
	_, err := s.QuizRepo().Save(ctx, QuizSubmission{Profile: "alex", Answers: map[int]string{1: "long"}, Method: "call"})
	require.NoError(t, err)
	require.NoError(t, s.GhostRepo().RecordDay(ctx, "alex", "2026-03-01"))
	require.NoError(t, s.EventRepo().AppendPointEvent(ctx, PointEventData{Profile: "alex", Award: "quiz", Points: 20}))

	require.NoError(t, s.Reset(ctx, "alex"))

	rec, err := s.ProgressRepo().Get(ctx, "alex")
	require.NoError(t, err)
	assert.Nil(t, rec)

	ids, err := s.ClaimRepo().ClaimedIDs(ctx, "alex")
	require.NoError(t, err)
	assert.Empty(t, ids)

	var responses int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM quiz_responses").Scan(&responses))
	assert.Zero(t, responses, "responses go with their submission")

	n, err := s.GhostRepo().DayCount(ctx, "alex")
	require.NoError(t, err)
	assert.Zero(t, n)

	rec, err = s.ProgressRepo().Get(ctx, "sam")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 70, rec.Points)
}
