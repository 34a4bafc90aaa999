package templates

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/crumble/internal/quiz"
)

// Tone describes the register of a breakup template.
type Tone string

const (
	ToneClassic  Tone = "classic"
	ToneGentle   Tone = "gentle"
	ToneBlunt    Tone = "blunt"
	ToneHumorous Tone = "humorous"
)

// Template is a ready-made breakup message for one method.
type Template struct {
	Method  quiz.Method
	Title   string
	Content string
	Tone    Tone
}

// NamePlaceholder is replaced by Fill with the recipient's name.
const NamePlaceholder = "[Name]"

// Fill returns the template content with the name placeholder replaced.
// An empty name leaves the placeholder in place.
func (t Template) Fill(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return t.Content
	}
	return strings.ReplaceAll(t.Content, NamePlaceholder, name)
}

var catalog = []Template{
	{quiz.MethodEmoji, "The Classic Goodbye", "👋 💔 🚶‍♂️", ToneClassic},
	{quiz.MethodEmoji, "It's Not You, It's Me", "🙅‍♂️ 👉 😔 👈 🙅‍♀️", ToneGentle},
	{quiz.MethodEmoji, "Moving On", "🏃‍♂️ 💨 ➡️ 🌈 ✨", ToneBlunt},
	{quiz.MethodEmoji, "The Lighthearted Exit", "🎭 🎪 👋 😂 🎭", ToneHumorous},

	{quiz.MethodCall, "The Respectful Goodbye",
		"I've been doing a lot of thinking about us, and I feel that we've grown apart. I value the time we've spent together, but I think it's best if we end our relationship and move forward separately.",
		ToneClassic},
	{quiz.MethodCall, "The Gentle Letdown",
		"I care about you deeply, which is why this is so difficult to say. I've realized that our relationship isn't fulfilling my needs, and I think we both deserve to find happiness, even if that's not with each other.",
		ToneGentle},
	{quiz.MethodCall, "The Direct Approach",
		"I need to be straightforward with you. This relationship isn't working for me anymore, and I've decided to end it. I wish you the best, but I need to move on.",
		ToneBlunt},
	{quiz.MethodCall, "The Lighthearted Farewell",
		"So, remember how we always joked that your cat hates me? I think the cat was right all along. In all seriousness though, I think we're better as friends, and I'd like to end our romantic relationship.",
		ToneHumorous},

	{quiz.MethodText, "The Thoughtful Text",
		"Hi [Name], I've been reflecting on our relationship, and I feel we should talk. I don't think we're compatible in the ways that matter for a long-term relationship. I've valued our time together, but I think it's best if we part ways. I wish you all the best.",
		ToneClassic},
	{quiz.MethodText, "The Caring Goodbye",
		"[Name], this is really hard for me to say, but I need to be honest with you. I don't feel the same way about our relationship as I once did. You're an amazing person, and I care about you deeply, but I think we need to end things between us. I hope you can understand.",
		ToneGentle},
	{quiz.MethodText, "The No-Nonsense Text",
		"[Name], I've decided to end our relationship. We want different things, and I don't see a future for us together. I wish you well, but it's time for both of us to move on.",
		ToneBlunt},
	{quiz.MethodText, "The Lighthearted Breakup",
		"Hey [Name], remember how we always said honesty is the best policy? Well, honestly, I think we make better friends than partners. Our romantic relationship has run its course, but I still think you're awesome. Let's call it quits on the dating thing, ok?",
		ToneHumorous},
}

// ForMethod returns the templates for m in catalog order.
func ForMethod(m quiz.Method) []Template {
	var out []Template
	for _, t := range catalog {
		if t.Method == m {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the template for m with the given tone.
func Find(m quiz.Method, tone Tone) (Template, bool) {
	for _, t := range catalog {
		if t.Method == m && t.Tone == tone {
			return t, true
		}
	}
	return Template{}, false
}

var affirmations = []string{
	"Remember, every ending is a new beginning.",
	"You are stronger than you know.",
	"Focus on self-love and growth today.",
	"Take time to heal and rediscover yourself.",
	"It's okay to not be okay sometimes.",
	"Your worth is not defined by someone else's inability to see it.",
	"Healing is not linear, but it is possible.",
	"Today is another step forward in your journey.",
	"You deserve peace and happiness.",
	"Trust the process and be patient with yourself.",
}

// Affirmations returns a copy of the affirmation list.
func Affirmations() []string {
	out := make([]string, len(affirmations))
	copy(out, affirmations)
	return out
}

// Affirmer picks affirmations at random.
type Affirmer struct {
	rng *rand.Rand
}

// NewAffirmer creates an Affirmer. A nil rng uses the global source.
func NewAffirmer(rng *rand.Rand) *Affirmer {
	return &Affirmer{rng: rng}
}

// Next returns a random affirmation.
func (a *Affirmer) Next() string {
	if a.rng == nil {
		return affirmations[rand.IntN(len(affirmations))]
	}
	return affirmations[a.rng.IntN(len(affirmations))]
}
