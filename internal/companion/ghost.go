package companion

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/abhisek/crumble/internal/ghost"
	"github.com/abhisek/crumble/internal/store"
)

// GhostSettings returns the ghost mode toggles, all off when none were saved.
func (s *Service) GhostSettings(ctx context.Context) (ghost.Settings, error) {
	return s.ghostSettings(ctx)
}

// SetGhostToggle switches one ghost mode toggle and returns the new settings.
// Switching a toggle on counts today as a ghost-mode day.
func (s *Service) SetGhostToggle(ctx context.Context, t ghost.Toggle, on bool) (ghost.Settings, error) {
	current, err := s.ghostSettings(ctx)
	if err != nil {
		return nil, err
	}
	next, err := current.With(t, on)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]bool, len(next))
	for k, v := range next {
		raw[string(k)] = v
	}
	if err := s.repos.Ghost.SaveSettings(ctx, s.profile, raw); err != nil {
		return nil, fmt.Errorf("save ghost settings: %w", err)
	}
	if err := s.touchGhostDay(ctx); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"profile": s.profile,
		"toggle":  t,
		"on":      on,
	}).Info("ghost mode toggled")
	return next, nil
}

func (s *Service) ghostSettings(ctx context.Context) (ghost.Settings, error) {
	raw, err := s.repos.Ghost.Settings(ctx, s.profile)
	if err != nil {
		return nil, fmt.Errorf("load ghost settings: %w", err)
	}
	settings := ghost.DefaultSettings()
	for k, v := range raw {
		// Toggles no longer known are ignored.
		if t, err := ghost.ParseToggle(k); err == nil {
			settings[t] = v
		}
	}
	return settings, nil
}

// touchGhostDay records today as a ghost-mode day while any toggle is on.
func (s *Service) touchGhostDay(ctx context.Context) error {
	settings, err := s.ghostSettings(ctx)
	if err != nil {
		return err
	}
	if !settings.Active() {
		return nil
	}
	day := s.clock().Format(store.DayLayout)
	if err := s.repos.Ghost.RecordDay(ctx, s.profile, day); err != nil {
		return fmt.Errorf("record ghost day: %w", err)
	}
	return nil
}

// Platforms returns one record per known platform.
func (s *Service) Platforms(ctx context.Context) ([]ghost.Platform, error) {
	ps, err := s.platforms(ctx)
	if err != nil {
		return nil, err
	}
	return ps.List(), nil
}

// ConnectPlatform marks a platform connected. The password is checked for
// presence and then dropped.
func (s *Service) ConnectPlatform(ctx context.Context, name string, creds ghost.Credentials) (ghost.Platform, error) {
	ps, err := s.platforms(ctx)
	if err != nil {
		return ghost.Platform{}, err
	}
	p, err := ps.Connect(name, creds, s.clock())
	if err != nil {
		return p, err
	}
	if err := s.savePlatform(ctx, p); err != nil {
		return ghost.Platform{}, err
	}
	log.WithFields(log.Fields{"profile": s.profile, "platform": p.Name}).Info("platform connected")
	return p, nil
}

// DisconnectPlatform marks a platform disconnected. The record is kept.
func (s *Service) DisconnectPlatform(ctx context.Context, name string) (ghost.Platform, error) {
	ps, err := s.platforms(ctx)
	if err != nil {
		return ghost.Platform{}, err
	}
	p, err := ps.Disconnect(name)
	if err != nil {
		return p, err
	}
	if err := s.savePlatform(ctx, p); err != nil {
		return ghost.Platform{}, err
	}
	log.WithFields(log.Fields{"profile": s.profile, "platform": p.Name}).Info("platform disconnected")
	return p, nil
}

func (s *Service) platforms(ctx context.Context) (ghost.Platforms, error) {
	recs, err := s.repos.Ghost.Platforms(ctx, s.profile)
	if err != nil {
		return nil, fmt.Errorf("load platforms: %w", err)
	}
	existing := make([]ghost.Platform, len(recs))
	for i, r := range recs {
		existing[i] = ghost.Platform{
			Name:        r.Name,
			Connected:   r.Connected,
			Username:    r.Username,
			ConnectedAt: r.ConnectedAt,
		}
	}
	return ghost.NewPlatforms(existing), nil
}

func (s *Service) savePlatform(ctx context.Context, p ghost.Platform) error {
	err := s.repos.Ghost.SavePlatform(ctx, s.profile, store.PlatformRecord{
		Name:        p.Name,
		Connected:   p.Connected,
		Username:    p.Username,
		ConnectedAt: p.ConnectedAt,
	})
	if err != nil {
		return fmt.Errorf("save platform: %w", err)
	}
	return nil
}
