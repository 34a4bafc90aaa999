package companion

import (
	"time"

	"github.com/abhisek/crumble/internal/ghost"
	"github.com/abhisek/crumble/internal/progression"
	"github.com/abhisek/crumble/internal/quiz"
	"github.com/abhisek/crumble/internal/rewards"
	"github.com/abhisek/crumble/internal/templates"
)

// AwardResult describes what one points award changed.
type AwardResult struct {
	Award  progression.Award
	Points int

	Before progression.DerivedState
	After  progression.DerivedState
	Streak int

	// NewAchievements are the achievements completed by this award.
	NewAchievements []rewards.Achievement
	// NewRewards are the rewards unlocked by this award.
	NewRewards []rewards.Reward
}

// LevelUp reports whether the award moved the user to a higher level.
func (r AwardResult) LevelUp() bool {
	return r.After.Level > r.Before.Level
}

// QuizOutcome is the result of a submitted quiz.
type QuizOutcome struct {
	SubmissionID string
	Result       quiz.Result
	// Award is nil when the quiz points could not be recorded.
	// The submission itself is kept.
	Award *AwardResult
}

// TemplateOutcome is a template picked for use, with the name filled in.
type TemplateOutcome struct {
	Template templates.Template
	Message  string
	Award    AwardResult
}

// AffirmationOutcome is a daily affirmation and the points it earned.
type AffirmationOutcome struct {
	Text  string
	Award AwardResult
}

// Status is the full progress view for one profile.
type Status struct {
	Profile      string                   `json:"profile"`
	Progress     progression.UserProgress `json:"progress"`
	Derived      progression.DerivedState `json:"derived"`
	LastActive   time.Time                `json:"last_active"`
	Achievements []rewards.Achievement    `json:"achievements"`
	Rewards      []rewards.Reward         `json:"rewards"`
	Ghost        ghost.Settings           `json:"ghost"`

	// LastMethod is the method of the latest quiz, empty if none was taken.
	LastMethod quiz.Method `json:"last_method,omitempty"`
}
