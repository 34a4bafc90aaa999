package ghost

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownPlatform    = errors.New("unknown platform")
	ErrAlreadyConnected   = errors.New("platform already connected")
	ErrNotConnected       = errors.New("platform not connected")
	ErrMissingCredentials = errors.New("username and password are required")
)

// KnownPlatforms lists the platforms a user can connect, in display order.
var KnownPlatforms = []string{"Instagram", "WhatsApp", "Snapchat", "LinkedIn"}

// Platform is a social platform record. Records are toggled, never deleted.
type Platform struct {
	Name        string    `json:"name"`
	Connected   bool      `json:"connected"`
	Username    string    `json:"username"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// Credentials is what a user submits to connect a platform.
// Nothing checks them against the platform; the password is only required
// to be present and is never kept.
type Credentials struct {
	Username string
	Password string
}

// CanonicalName matches name against KnownPlatforms case-insensitively.
func CanonicalName(name string) (string, error) {
	for _, p := range KnownPlatforms {
		if strings.EqualFold(p, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownPlatform)
}

// Platforms is the per-user set of platform records, one per known platform.
type Platforms map[string]Platform

// NewPlatforms returns a disconnected record for every known platform,
// overlaid with existing records.
func NewPlatforms(existing []Platform) Platforms {
	ps := make(Platforms, len(KnownPlatforms))
	for _, name := range KnownPlatforms {
		ps[name] = Platform{Name: name}
	}
	for _, p := range existing {
		if name, err := CanonicalName(p.Name); err == nil {
			p.Name = name
			ps[name] = p
		}
	}
	return ps
}

// Connect marks a platform connected under creds.Username at time now.
func (ps Platforms) Connect(name string, creds Credentials, now time.Time) (Platform, error) {
	name, err := CanonicalName(name)
	if err != nil {
		return Platform{}, err
	}
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return Platform{}, fmt.Errorf("%s: %w", name, ErrMissingCredentials)
	}
	if ps[name].Connected {
		return ps[name], fmt.Errorf("%s: %w", name, ErrAlreadyConnected)
	}
	p := Platform{
		Name:        name,
		Connected:   true,
		Username:    strings.TrimSpace(creds.Username),
		ConnectedAt: now.UTC(),
	}
	ps[name] = p
	return p, nil
}

// Disconnect marks a connected platform disconnected. The record is kept.
func (ps Platforms) Disconnect(name string) (Platform, error) {
	name, err := CanonicalName(name)
	if err != nil {
		return Platform{}, err
	}
	p := ps[name]
	if !p.Connected {
		return p, fmt.Errorf("%s: %w", name, ErrNotConnected)
	}
	p.Connected = false
	ps[name] = p
	return p, nil
}

// List returns the records in KnownPlatforms order.
func (ps Platforms) List() []Platform {
	out := make([]Platform, 0, len(KnownPlatforms))
	for _, name := range KnownPlatforms {
		out = append(out, ps[name])
	}
	return out
}
