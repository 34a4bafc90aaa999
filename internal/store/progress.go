package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/crumble/ent"
	"github.com/abhisek/crumble/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, profile string) (*ProgressRecord, error) {
	p, err := r.client.Progress.Query().
		Where(progress.Profile(profile)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &ProgressRecord{
		Points:     p.Points,
		Streak:     p.Streak,
		DaysStrong: p.DaysStrong,
		IsPremium:  p.IsPremium,
		LastActive: p.LastActive,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

func (r *progressRepo) Save(ctx context.Context, profile string, rec ProgressRecord) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now()
	}
	updatedAt := rec.UpdatedAt.UTC()

	n, err := r.client.Progress.Update().
		Where(progress.Profile(profile)).
		SetPoints(rec.Points).
		SetStreak(rec.Streak).
		SetDaysStrong(rec.DaysStrong).
		SetIsPremium(rec.IsPremium).
		SetLastActive(rec.LastActive).
		SetUpdatedAt(updatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Progress.Create().
		SetProfile(profile).
		SetPoints(rec.Points).
		SetStreak(rec.Streak).
		SetDaysStrong(rec.DaysStrong).
		SetIsPremium(rec.IsPremium).
		SetLastActive(rec.LastActive).
		SetUpdatedAt(updatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}
