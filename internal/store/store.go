package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent"
	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/ghostsetting"
	"github.com/abhisek/crumble/ent/pointevent"
	"github.com/abhisek/crumble/ent/progress"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/abhisek/crumble/ent/rewardclaim"
	"github.com/abhisek/crumble/ent/socialplatform"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DayLayout is the format of calendar-day fields.
const DayLayout = "2006-01-02"

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ProgressRepo returns a ProgressRepo backed by this store.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{client: s.client}
}

// ClaimRepo returns a ClaimRepo backed by this store.
func (s *Store) ClaimRepo() ClaimRepo {
	return &claimRepo{client: s.client}
}

// QuizRepo returns a QuizRepo backed by this store.
func (s *Store) QuizRepo() QuizRepo {
	return &quizRepo{client: s.client, seq: s.seq}
}

// GhostRepo returns a GhostRepo backed by this store.
func (s *Store) GhostRepo() GhostRepo {
	return &ghostRepo{client: s.client}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// Reset deletes everything recorded for profile in one transaction.
func (s *Store) Reset(ctx context.Context, profile string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}

	deletes := []struct {
		table string
		exec  func(context.Context) (int, error)
	}{
		{"quiz responses", tx.QuizResponse.Delete().
			Where(quizresponse.HasSubmissionWith(quizsubmission.Profile(profile))).Exec},
		{"quiz submissions", tx.QuizSubmission.Delete().Where(quizsubmission.Profile(profile)).Exec},
		{"progress", tx.Progress.Delete().Where(progress.Profile(profile)).Exec},
		{"reward claims", tx.RewardClaim.Delete().Where(rewardclaim.Profile(profile)).Exec},
		{"ghost settings", tx.GhostSetting.Delete().Where(ghostsetting.Profile(profile)).Exec},
		{"ghost mode days", tx.GhostModeDay.Delete().Where(ghostmodeday.Profile(profile)).Exec},
		{"social platforms", tx.SocialPlatform.Delete().Where(socialplatform.Profile(profile)).Exec},
		{"point events", tx.PointEvent.Delete().Where(pointevent.Profile(profile)).Exec},
	}
	for _, d := range deletes {
		if _, err := d.exec(ctx); err != nil {
			return rollback(tx, fmt.Errorf("reset %s: %w", d.table, err))
		}
	}
	return tx.Commit()
}

// rollback aborts tx and joins any rollback failure onto err.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. $XDG_DATA_HOME/crumble/crumble.db
// 2. ~/.local/share/crumble/crumble.db
//
// CRUMBLE_DB is handled by the config package before this is consulted.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "crumble", "crumble.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
