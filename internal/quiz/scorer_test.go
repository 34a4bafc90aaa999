package quiz

import (
	"errors"
	"testing"
)

func TestScore_EmptySetIsAllZero(t *testing.T) {
	scores := Score(AnswerSet{})
	for _, m := range AllMethods() {
		v, ok := scores[m]
		if !ok {
			t.Errorf("scores missing %q", m)
		}
		if v != 0 {
			t.Errorf("scores[%q] = %d, want 0", m, v)
		}
	}
}

func TestRecommend_EmptyDefaultsToCall(t *testing.T) {
	if got := Recommend(nil); got != MethodCall {
		t.Errorf("Recommend(nil) = %q, want %q", got, MethodCall)
	}
	if got := Recommend(AnswerSet{}); got != MethodCall {
		t.Errorf("Recommend({}) = %q, want %q", got, MethodCall)
	}
}

func TestScore_CallScenario(t *testing.T) {
	a := AnswerSet{1: "long", 2: "direct", 4: "face", 9: "verbal"}
	scores := Score(a)
	if scores[MethodCall] != 9 {
		t.Errorf("call = %d, want 9", scores[MethodCall])
	}
	if scores[MethodText] != 0 || scores[MethodEmoji] != 0 {
		t.Errorf("text/emoji = %d/%d, want 0/0", scores[MethodText], scores[MethodEmoji])
	}
	if got := Recommend(a); got != MethodCall {
		t.Errorf("Recommend = %q, want %q", got, MethodCall)
	}
}

func TestScore_LongOrSeriousCountsOnce(t *testing.T) {
	scores := Score(AnswerSet{1: "long", 6: "serious"})
	if scores[MethodCall] != 2 {
		t.Errorf("call = %d, want 2", scores[MethodCall])
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerSet
		want    Method
	}{
		{"text wins", AnswerSet{2: "careful", 4: "written", 7: "rarely"}, MethodText},
		{"emoji wins", AnswerSet{6: "casual", 9: "creative", 10: "kindness"}, MethodEmoji},
		{"text outweighs face-to-face", AnswerSet{4: "face", 2: "careful", 7: "rarely"}, MethodText},
		{"exact tie call/text", AnswerSet{2: "direct", 7: "rarely"}, MethodCall},
		{"exact tie text/emoji", AnswerSet{2: "careful", 6: "casual"}, MethodText},
		{"unknown ids ignored", AnswerSet{42: "long", 0: "face"}, MethodCall},
		{"unknown values ignored", AnswerSet{9: "interpretive-dance", 6: "casual"}, MethodEmoji},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.answers); got != tt.want {
				t.Errorf("Recommend = %q, want %q (scores %v)", got, tt.want, Score(tt.answers))
			}
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	a := AnswerSet{1: "short", 2: "emotional", 4: "written", 6: "casual", 9: "written", 10: "kindness"}
	first := Evaluate(a)
	for i := 0; i < 50; i++ {
		got := Evaluate(a)
		if got.Method != first.Method {
			t.Fatalf("run %d: method %q, want %q", i, got.Method, first.Method)
		}
		for _, m := range AllMethods() {
			if got.Scores[m] != first.Scores[m] {
				t.Fatalf("run %d: scores[%q] = %d, want %d", i, m, got.Scores[m], first.Scores[m])
			}
		}
	}
}

func TestRecommend_AlwaysAMethod(t *testing.T) {
	// Every combination of answers for the rule-bearing questions.
	ids := []QuestionID{1, 2, 4, 6, 7, 9, 10}
	var walk func(i int, a AnswerSet)
	count := 0
	walk = func(i int, a AnswerSet) {
		if i == len(ids) {
			count++
			if _, ok := ParseMethod(string(Recommend(a))); !ok {
				t.Fatalf("Recommend(%v) returned a non-method", a)
			}
			return
		}
		q, _ := QuestionByID(ids[i])
		for _, o := range q.Options {
			next := AnswerSet{}
			for k, v := range a {
				next[k] = v
			}
			next[q.ID] = o.Value
			walk(i+1, next)
		}
	}
	walk(0, AnswerSet{})
	if count != 2187 {
		t.Errorf("visited %d combinations, want 2187", count)
	}
}

func TestNewScorer_CustomRulesSkipNonPositiveWeights(t *testing.T) {
	s := NewScorer([]Rule{
		{Name: "neg", Method: MethodCall, Weight: -5, Match: func(AnswerSet) bool { return true }},
		{Name: "pos", Method: MethodEmoji, Weight: 1, Match: func(AnswerSet) bool { return true }},
	})
	scores := s.Score(nil)
	if scores[MethodCall] != 0 {
		t.Errorf("call = %d, want 0", scores[MethodCall])
	}
	if got := s.Recommend(nil); got != MethodEmoji {
		t.Errorf("Recommend = %q, want %q", got, MethodEmoji)
	}
}

func TestComplete(t *testing.T) {
	a := AnswerSet{}
	for _, q := range Bank() {
		if a.Complete() {
			t.Fatalf("Complete() = true with %d answers", len(a))
		}
		a[q.ID] = q.Options[0].Value
	}
	if !a.Complete() {
		t.Error("Complete() = false with every question answered")
	}
}

func TestBank_ThreeOptionsEach(t *testing.T) {
	b := Bank()
	if len(b) != 10 {
		t.Fatalf("bank has %d questions, want 10", len(b))
	}
	for i, q := range b {
		if q.ID != QuestionID(i+1) {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if len(q.Options) != 3 {
			t.Errorf("question %d has %d options, want 3", q.ID, len(q.Options))
		}
	}
}

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers([]byte(`{"1":"long","4":"face","10":"peace"}`))
	if err != nil {
		t.Fatalf("ParseAnswers: %v", err)
	}
	if a[1] != "long" || a[4] != "face" || a[10] != "peace" {
		t.Errorf("got %v", a)
	}
}

func TestParseAnswers_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"1":`},
		{"not object", `["long"]`},
		{"unknown question", `{"11":"long"}`},
		{"unknown option", `{"1":"forever"}`},
		{"non-string value", `{"1":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnswers([]byte(tt.raw))
			if !errors.Is(err, ErrInvalidAnswers) {
				t.Errorf("err = %v, want ErrInvalidAnswers", err)
			}
		})
	}
}

func TestParsePairs(t *testing.T) {
	a, err := ParsePairs([]string{"2=careful", " 9 = written "})
	if err != nil {
		t.Fatalf("ParsePairs: %v", err)
	}
	if a[2] != "careful" || a[9] != "written" {
		t.Errorf("got %v", a)
	}

	for _, bad := range []string{"2", "x=long", "12=long", "2=loud"} {
		if _, err := ParsePairs([]string{bad}); !errors.Is(err, ErrInvalidAnswers) {
			t.Errorf("ParsePairs(%q) err = %v, want ErrInvalidAnswers", bad, err)
		}
	}
}
