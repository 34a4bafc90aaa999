package quiz

// Rule adds Weight to Method when Match holds for an answer set.
type Rule struct {
	Name   string
	Method Method
	Weight int
	Match  func(a AnswerSet) bool
}

func answered(id QuestionID, value string) func(AnswerSet) bool {
	return func(a AnswerSet) bool { return a[id] == value }
}

// DefaultRules returns the weighted rule table. Every rule is evaluated;
// order only matters for readability.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "long-or-serious", Method: MethodCall, Weight: 2, Match: func(a AnswerSet) bool {
			return a[1] == "long" || a[6] == "serious"
		}},
		{Name: "direct-style", Method: MethodCall, Weight: 2, Match: answered(2, "direct")},
		{Name: "face-to-face", Method: MethodCall, Weight: 3, Match: answered(4, "face")},
		{Name: "verbal", Method: MethodCall, Weight: 2, Match: answered(9, "verbal")},

		{Name: "careful-style", Method: MethodText, Weight: 2, Match: answered(2, "careful")},
		{Name: "prefers-written", Method: MethodText, Weight: 3, Match: answered(4, "written")},
		{Name: "long-distance", Method: MethodText, Weight: 2, Match: answered(7, "rarely")},
		{Name: "writer", Method: MethodText, Weight: 2, Match: answered(9, "written")},

		{Name: "emotional-style", Method: MethodEmoji, Weight: 2, Match: answered(2, "emotional")},
		{Name: "casual", Method: MethodEmoji, Weight: 2, Match: answered(6, "casual")},
		{Name: "creative", Method: MethodEmoji, Weight: 3, Match: answered(9, "creative")},
		{Name: "kindness-first", Method: MethodEmoji, Weight: 2, Match: answered(10, "kindness")},
	}
}

// Scorer evaluates a rule table against answer sets.
type Scorer struct {
	rules []Rule
}

// NewScorer creates a Scorer over rules. A nil slice uses DefaultRules.
func NewScorer(rules []Rule) *Scorer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Scorer{rules: rules}
}

// Score sums the weight of every matching rule per method.
// All methods start at zero, so the result always has three entries.
func (s *Scorer) Score(a AnswerSet) MethodScore {
	scores := MethodScore{}
	for _, m := range AllMethods() {
		scores[m] = 0
	}
	for _, r := range s.rules {
		if r.Weight <= 0 {
			continue
		}
		if r.Match(a) {
			scores[r.Method] += r.Weight
		}
	}
	return scores
}

// Recommend returns the highest-scoring method. Ties go to the method
// listed first in AllMethods, so an empty answer set yields MethodCall.
func (s *Scorer) Recommend(a AnswerSet) Method {
	return s.Evaluate(a).Method
}

// Evaluate scores a and picks the recommended method.
func (s *Scorer) Evaluate(a AnswerSet) Result {
	scores := s.Score(a)
	best := MethodCall
	for _, m := range AllMethods() {
		if scores[m] > scores[best] {
			best = m
		}
	}
	return Result{Method: best, Scores: scores}
}

var defaultScorer = NewScorer(nil)

// Score scores a with the default rule table.
func Score(a AnswerSet) MethodScore { return defaultScorer.Score(a) }

// Recommend recommends a method with the default rule table.
func Recommend(a AnswerSet) Method { return defaultScorer.Recommend(a) }

// Evaluate scores and recommends with the default rule table.
func Evaluate(a AnswerSet) Result { return defaultScorer.Evaluate(a) }
