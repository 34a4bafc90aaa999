package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/crumble/ent"
	"github.com/abhisek/crumble/ent/pointevent"
)

// sequenceCounter hands out the global monotonic sequence number shared by
// point events and quiz submissions. Ent has no atomic counters, so this
// uses raw SQL. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPointEvent(ctx context.Context, data PointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PointEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetProfile(data.Profile).
		SetAward(data.Award).
		SetPoints(data.Points).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save point event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPointEvents(ctx context.Context, profile string, opts QueryOpts) ([]PointEventRecord, error) {
	query := r.client.PointEvent.Query().
		Where(pointevent.Profile(profile)).
		Order(ent.Desc(pointevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(pointevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(pointevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(pointevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		query = query.Where(pointevent.TimestampLTE(opts.To.UTC()))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query point events: %w", err)
	}

	records := make([]PointEventRecord, len(events))
	for i, e := range events {
		records[i] = PointEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			PointEventData: PointEventData{
				Profile: e.Profile,
				Award:   e.Award,
				Points:  e.Points,
			},
		}
	}
	return records, nil
}
