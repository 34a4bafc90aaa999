// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GhostModeDay is the predicate function for ghostmodeday builders.
type GhostModeDay func(*sql.Selector)

// GhostSetting is the predicate function for ghostsetting builders.
type GhostSetting func(*sql.Selector)

// PointEvent is the predicate function for pointevent builders.
type PointEvent func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// QuizResponse is the predicate function for quizresponse builders.
type QuizResponse func(*sql.Selector)

// QuizSubmission is the predicate function for quizsubmission builders.
type QuizSubmission func(*sql.Selector)

// RewardClaim is the predicate function for rewardclaim builders.
type RewardClaim func(*sql.Selector)

// SocialPlatform is the predicate function for socialplatform builders.
type SocialPlatform func(*sql.Selector)
