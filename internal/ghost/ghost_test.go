package ghost

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultSettings_AllOff(t *testing.T) {
	s := DefaultSettings()
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	if s.Active() {
		t.Error("Active() = true for defaults")
	}
}

func TestSettings_WithIsIndependent(t *testing.T) {
	s := DefaultSettings()
	s2, err := s.With(HideStatus, true)
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if s[HideStatus] {
		t.Error("With mutated the receiver")
	}
	for _, tg := range AllToggles() {
		want := tg == HideStatus
		if s2[tg] != want {
			t.Errorf("%s = %v, want %v", tg, s2[tg], want)
		}
	}
	if !s2.Active() {
		t.Error("Active() = false with a toggle on")
	}
}

func TestParseToggle(t *testing.T) {
	if tg, err := ParseToggle("muteNotifications"); err != nil || tg != MuteNotifications {
		t.Errorf("ParseToggle = %q, %v", tg, err)
	}
	if _, err := ParseToggle("invisibility"); !errors.Is(err, ErrUnknownToggle) {
		t.Errorf("err = %v, want ErrUnknownToggle", err)
	}
	if _, err := DefaultSettings().With("invisibility", true); !errors.Is(err, ErrUnknownToggle) {
		t.Errorf("With err = %v, want ErrUnknownToggle", err)
	}
}

func TestPlatforms_ConnectDisconnect(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	ps := NewPlatforms(nil)

	p, err := ps.Connect("instagram", Credentials{Username: " sam ", Password: "pw"}, now)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if p.Name != "Instagram" || !p.Connected || p.Username != "sam" || !p.ConnectedAt.Equal(now) {
		t.Errorf("Connect = %+v", p)
	}

	if _, err := ps.Connect("Instagram", Credentials{Username: "sam", Password: "pw"}, now); !errors.Is(err, ErrAlreadyConnected) {
		t.Errorf("second Connect err = %v, want ErrAlreadyConnected", err)
	}

	p, err = ps.Disconnect("Instagram")
	if err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if p.Connected {
		t.Error("still connected after Disconnect")
	}
	if _, err := ps.Disconnect("Instagram"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("second Disconnect err = %v, want ErrNotConnected", err)
	}
	if _, err := ps.Disconnect("LinkedIn"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Disconnect of never connected err = %v, want ErrNotConnected", err)
	}
	if len(ps.List()) != len(KnownPlatforms) {
		t.Errorf("List has %d records, want %d", len(ps.List()), len(KnownPlatforms))
	}
}

func TestPlatforms_ConnectRejects(t *testing.T) {
	ps := NewPlatforms(nil)
	now := time.Now()

	if _, err := ps.Connect("MySpace", Credentials{Username: "a", Password: "b"}, now); !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("err = %v, want ErrUnknownPlatform", err)
	}
	if _, err := ps.Connect("LinkedIn", Credentials{Username: "a"}, now); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("err = %v, want ErrMissingCredentials", err)
	}
	if _, err := ps.Connect("LinkedIn", Credentials{Username: "  ", Password: "b"}, now); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("err = %v, want ErrMissingCredentials", err)
	}
	if ps["LinkedIn"].Connected {
		t.Error("rejected connect changed the record")
	}
}

func TestNewPlatforms_OverlaysExisting(t *testing.T) {
	ps := NewPlatforms([]Platform{
		{Name: "whatsapp", Connected: true, Username: "kim"},
		{Name: "Friendster", Connected: true},
	})
	if !ps["WhatsApp"].Connected || ps["WhatsApp"].Username != "kim" {
		t.Errorf("WhatsApp = %+v", ps["WhatsApp"])
	}
	if _, ok := ps["Friendster"]; ok {
		t.Error("unknown platform kept")
	}
	list := ps.List()
	for i, name := range KnownPlatforms {
		if list[i].Name != name {
			t.Errorf("List[%d] = %q, want %q", i, list[i].Name, name)
		}
	}
}
