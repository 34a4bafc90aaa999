package store

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateClaim is returned when a reward was already claimed for the profile.
var ErrDuplicateClaim = errors.New("duplicate reward claim")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressRecord is the stored progress row for one profile.
type ProgressRecord struct {
	Points     int
	Streak     int
	DaysStrong int
	IsPremium  bool
	// LastActive is a DayLayout date, empty before the first activity.
	LastActive string
	UpdatedAt  time.Time
}

// ProgressRepo stores per-profile progress.
type ProgressRepo interface {
	// Get returns the progress for profile, or nil if none was saved.
	Get(ctx context.Context, profile string) (*ProgressRecord, error)

	// Save inserts or replaces the progress for profile.
	Save(ctx context.Context, profile string, rec ProgressRecord) error
}

// ClaimRepo stores reward claims.
type ClaimRepo interface {
	// Record inserts a claim. A second claim of the same reward for the same
	// profile returns ErrDuplicateClaim.
	Record(ctx context.Context, profile string, rewardID int, at time.Time) error

	// ClaimedIDs returns the claimed reward ids for profile in ascending order.
	ClaimedIDs(ctx context.Context, profile string) ([]int, error)
}

// QuizSubmission is one completed quiz.
type QuizSubmission struct {
	ID        string
	Profile   string
	Answers   map[int]string
	Method    string
	CreatedAt time.Time
}

// QuizRepo stores quiz submissions.
type QuizRepo interface {
	// Save stores the submission and returns its generated id.
	Save(ctx context.Context, sub QuizSubmission) (string, error)

	// Latest returns the newest submission for profile, or nil if none exist.
	Latest(ctx context.Context, profile string) (*QuizSubmission, error)
}

// PlatformRecord is a stored social platform connection.
type PlatformRecord struct {
	Name        string
	Connected   bool
	Username    string
	ConnectedAt time.Time
}

// GhostRepo stores ghost mode settings, active days and platform records.
type GhostRepo interface {
	// Settings returns the saved toggles for profile. Missing toggles are absent.
	Settings(ctx context.Context, profile string) (map[string]bool, error)

	// SaveSettings upserts every toggle in settings.
	SaveSettings(ctx context.Context, profile string, settings map[string]bool) error

	// RecordDay marks day (DayLayout) as a ghost mode day. Repeats are ignored.
	RecordDay(ctx context.Context, profile, day string) error

	// DayCount returns the number of distinct ghost mode days.
	DayCount(ctx context.Context, profile string) (int, error)

	// Platforms returns the stored platform records ordered by name.
	Platforms(ctx context.Context, profile string) ([]PlatformRecord, error)

	// SavePlatform inserts or replaces one platform record.
	SavePlatform(ctx context.Context, profile string, rec PlatformRecord) error
}

// PointEventData is one points award.
type PointEventData struct {
	Profile string
	Award   string
	Points  int
}

// PointEventRecord is a stored points award.
type PointEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	PointEventData
}

// EventRepo provides append and query access to the points history.
type EventRepo interface {
	// AppendPointEvent records an award under the next global sequence.
	AppendPointEvent(ctx context.Context, data PointEventData) error

	// QueryPointEvents returns the awards for profile, newest first.
	QueryPointEvents(ctx context.Context, profile string, opts QueryOpts) ([]PointEventRecord, error)
}
