package quiz

// Option is one selectable answer to a question.
type Option struct {
	Value string
	Label string
}

// Question is a single quiz prompt with exactly three options.
type Question struct {
	ID      QuestionID
	Prompt  string
	Options []Option
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

var bank = []Question{
	{ID: 1, Prompt: "How long was your relationship?", Options: []Option{
		{"short", "Less than 6 months"},
		{"medium", "6 months to 2 years"},
		{"long", "More than 2 years"},
	}},
	{ID: 2, Prompt: "How would you describe your communication style?", Options: []Option{
		{"direct", "Direct and straightforward"},
		{"emotional", "Emotional and expressive"},
		{"careful", "Careful and diplomatic"},
	}},
	{ID: 3, Prompt: "What is your main reason for breaking up?", Options: []Option{
		{"incompatible", "Different life goals/values"},
		{"feelings", "Lost feelings/grew apart"},
		{"trust", "Trust issues/betrayal"},
	}},
	{ID: 4, Prompt: "How do you handle confrontation?", Options: []Option{
		{"face", "Prefer face-to-face discussions"},
		{"avoid", "Prefer to avoid direct confrontation"},
		{"written", "Prefer written communication"},
	}},
	{ID: 5, Prompt: "How do you think they will react?", Options: []Option{
		{"understanding", "Understanding and accepting"},
		{"emotional", "Emotional or upset"},
		{"unpredictable", "Unpredictable or volatile"},
	}},
	{ID: 6, Prompt: "What kind of relationship did you have?", Options: []Option{
		{"serious", "Serious and committed"},
		{"casual", "Casual or undefined"},
		{"complicated", "Complicated or on/off"},
	}},
	{ID: 7, Prompt: "How often do you see each other in person?", Options: []Option{
		{"often", "Several times a week"},
		{"sometimes", "Once a week or less"},
		{"rarely", "Mainly long-distance/online"},
	}},
	{ID: 8, Prompt: "What is your desired outcome?", Options: []Option{
		{"friends", "Remain friends if possible"},
		{"clean", "Clean break, no contact"},
		{"open", "Keep communication open"},
	}},
	{ID: 9, Prompt: "How do you express yourself best?", Options: []Option{
		{"verbal", "Through speaking"},
		{"written", "Through writing"},
		{"creative", "Through creative expression"},
	}},
	{ID: 10, Prompt: "What is your priority in this breakup?", Options: []Option{
		{"clarity", "Being clear and direct"},
		{"kindness", "Being kind and gentle"},
		{"peace", "Maintaining peace"},
	}},
}

// Bank returns the fixed question bank in presentation order.
// The returned slice is a copy.
func Bank() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// QuestionByID looks up a question by id.
func QuestionByID(id QuestionID) (Question, bool) {
	for _, q := range bank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
