package templates

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/crumble/internal/quiz"
)

func TestForMethod_FourTonesEach(t *testing.T) {
	for _, m := range quiz.AllMethods() {
		ts := ForMethod(m)
		if len(ts) != 4 {
			t.Errorf("%s: %d templates, want 4", m, len(ts))
		}
		for _, tone := range []Tone{ToneClassic, ToneGentle, ToneBlunt, ToneHumorous} {
			if _, ok := Find(m, tone); !ok {
				t.Errorf("%s: no %s template", m, tone)
			}
		}
	}
}

func TestFill(t *testing.T) {
	tpl, ok := Find(quiz.MethodText, ToneBlunt)
	if !ok {
		t.Fatal("missing text/blunt template")
	}
	got := tpl.Fill("Alex")
	if strings.Contains(got, NamePlaceholder) {
		t.Errorf("placeholder left in %q", got)
	}
	if !strings.HasPrefix(got, "Alex,") {
		t.Errorf("Fill = %q, want prefix %q", got, "Alex,")
	}
	if tpl.Fill("  ") != tpl.Content {
		t.Error("blank name should leave content untouched")
	}
}

func TestAffirmer_Seeded(t *testing.T) {
	a := NewAffirmer(rand.New(rand.NewPCG(1, 2)))
	b := NewAffirmer(rand.New(rand.NewPCG(1, 2)))
	all := Affirmations()
	for i := 0; i < 20; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("draw %d: %q != %q with the same seed", i, x, y)
		}
		if !slices.Contains(all, x) {
			t.Fatalf("draw %d: %q is not an affirmation", i, x)
		}
	}
}

func TestAffirmer_GlobalSource(t *testing.T) {
	if got := NewAffirmer(nil).Next(); !slices.Contains(Affirmations(), got) {
		t.Errorf("Next = %q, not an affirmation", got)
	}
}
