package quiz

// Method is a breakup-delivery channel the quiz can recommend.
type Method string

const (
	MethodCall  Method = "call"
	MethodText  Method = "text"
	MethodEmoji Method = "emoji"
)

// AllMethods returns the methods in tie-break order.
func AllMethods() []Method {
	return []Method{MethodCall, MethodText, MethodEmoji}
}

// ParseMethod returns the Method named by s, or false if s is not a method.
func ParseMethod(s string) (Method, bool) {
	for _, m := range AllMethods() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// DisplayName returns a human-readable label for the method.
func (m Method) DisplayName() string {
	switch m {
	case MethodCall:
		return "Breakup Through Call"
	case MethodText:
		return "Breakup Through Text"
	case MethodEmoji:
		return "Breakup Through Emoji"
	default:
		return string(m)
	}
}

// Icon returns the display icon for the method.
func (m Method) Icon() string {
	switch m {
	case MethodCall:
		return "📞"
	case MethodText:
		return "💬"
	case MethodEmoji:
		return "💔"
	default:
		return "✦"
	}
}

// QuestionID identifies a question in the bank (1..10).
type QuestionID int

// AnswerSet maps question ids to the chosen option value.
// Partial sets are allowed; missing questions score nothing.
type AnswerSet map[QuestionID]string

// Complete reports whether every question in the bank has an answer.
func (a AnswerSet) Complete() bool {
	for _, q := range Bank() {
		if a[q.ID] == "" {
			return false
		}
	}
	return true
}

// MethodScore accumulates rule weights per method.
type MethodScore map[Method]int

// Result is the outcome of scoring an answer set.
type Result struct {
	Method Method
	Scores MethodScore
}
