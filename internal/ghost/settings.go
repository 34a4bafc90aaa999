package ghost

import (
	"errors"
	"fmt"
)

// Toggle names one ghost-mode switch.
type Toggle string

const (
	BlockMessages     Toggle = "blockMessages"
	HideStatus        Toggle = "hideStatus"
	MuteNotifications Toggle = "muteNotifications"
	HideActivity      Toggle = "hideActivity"
)

// AllToggles returns the toggles in display order.
func AllToggles() []Toggle {
	return []Toggle{BlockMessages, HideStatus, MuteNotifications, HideActivity}
}

// DisplayName returns a human-readable label for the toggle.
func (t Toggle) DisplayName() string {
	switch t {
	case BlockMessages:
		return "Block messages"
	case HideStatus:
		return "Hide online status"
	case MuteNotifications:
		return "Mute notifications"
	case HideActivity:
		return "Hide activity"
	default:
		return string(t)
	}
}

// ErrUnknownToggle is returned for toggle names outside AllToggles.
var ErrUnknownToggle = errors.New("unknown ghost mode toggle")

// ParseToggle returns the Toggle named s.
func ParseToggle(s string) (Toggle, error) {
	for _, t := range AllToggles() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownToggle)
}

// Settings holds the ghost-mode switches. Each toggle is independent.
type Settings map[Toggle]bool

// DefaultSettings returns every toggle switched off.
func DefaultSettings() Settings {
	s := make(Settings, len(AllToggles()))
	for _, t := range AllToggles() {
		s[t] = false
	}
	return s
}

// With returns a copy of s with t set to on.
func (s Settings) With(t Toggle, on bool) (Settings, error) {
	if _, err := ParseToggle(string(t)); err != nil {
		return nil, err
	}
	out := DefaultSettings()
	for k, v := range s {
		out[k] = v
	}
	out[t] = on
	return out, nil
}

// Active reports whether any toggle is on.
func (s Settings) Active() bool {
	for _, t := range AllToggles() {
		if s[t] {
			return true
		}
	}
	return false
}
