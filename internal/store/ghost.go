package store

import (
	"context"
	"fmt"

	"github.com/abhisek/crumble/ent"
	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/ghostsetting"
	"github.com/abhisek/crumble/ent/socialplatform"
)

// ghostRepo implements GhostRepo using the ent client.
type ghostRepo struct {
	client *ent.Client
}

func (r *ghostRepo) Settings(ctx context.Context, profile string) (map[string]bool, error) {
	rows, err := r.client.GhostSetting.Query().
		Where(ghostsetting.Profile(profile)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ghost settings: %w", err)
	}

	out := make(map[string]bool, len(rows))
	for _, row := range rows {
		out[row.Toggle] = row.Enabled
	}
	return out, nil
}

func (r *ghostRepo) SaveSettings(ctx context.Context, profile string, settings map[string]bool) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin ghost settings: %w", err)
	}

	for toggle, on := range settings {
		n, err := tx.GhostSetting.Update().
			Where(ghostsetting.Profile(profile), ghostsetting.Toggle(toggle)).
			SetEnabled(on).
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("update ghost setting %s: %w", toggle, err))
		}
		if n > 0 {
			continue
		}
		_, err = tx.GhostSetting.Create().
			SetProfile(profile).
			SetToggle(toggle).
			SetEnabled(on).
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("create ghost setting %s: %w", toggle, err))
		}
	}
	return tx.Commit()
}

func (r *ghostRepo) RecordDay(ctx context.Context, profile, day string) error {
	_, err := r.client.GhostModeDay.Create().
		SetProfile(profile).
		SetDay(day).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("record ghost day: %w", err)
	}
	return nil
}

func (r *ghostRepo) DayCount(ctx context.Context, profile string) (int, error) {
	n, err := r.client.GhostModeDay.Query().
		Where(ghostmodeday.Profile(profile)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count ghost days: %w", err)
	}
	return n, nil
}

func (r *ghostRepo) Platforms(ctx context.Context, profile string) ([]PlatformRecord, error) {
	rows, err := r.client.SocialPlatform.Query().
		Where(socialplatform.Profile(profile)).
		Order(ent.Asc(socialplatform.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query platforms: %w", err)
	}

	out := make([]PlatformRecord, len(rows))
	for i, p := range rows {
		out[i] = PlatformRecord{
			Name:        p.Name,
			Connected:   p.Connected,
			Username:    p.Username,
			ConnectedAt: p.ConnectedAt,
		}
	}
	return out, nil
}

func (r *ghostRepo) SavePlatform(ctx context.Context, profile string, rec PlatformRecord) error {
	update := r.client.SocialPlatform.Update().
		Where(socialplatform.Profile(profile), socialplatform.Name(rec.Name)).
		SetConnected(rec.Connected).
		SetUsername(rec.Username)
	if rec.ConnectedAt.IsZero() {
		update = update.ClearConnectedAt()
	} else {
		update = update.SetConnectedAt(rec.ConnectedAt.UTC())
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("update platform %s: %w", rec.Name, err)
	}
	if n > 0 {
		return nil
	}

	create := r.client.SocialPlatform.Create().
		SetProfile(profile).
		SetName(rec.Name).
		SetConnected(rec.Connected).
		SetUsername(rec.Username)
	if !rec.ConnectedAt.IsZero() {
		create = create.SetConnectedAt(rec.ConnectedAt.UTC())
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create platform %s: %w", rec.Name, err)
	}
	return nil
}
