// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/ghostsetting"
	"github.com/abhisek/crumble/ent/pointevent"
	"github.com/abhisek/crumble/ent/progress"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/abhisek/crumble/ent/rewardclaim"
	"github.com/abhisek/crumble/ent/schema"
	"github.com/abhisek/crumble/ent/socialplatform"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ghostmodedayFields := schema.GhostModeDay{}.Fields()
	_ = ghostmodedayFields
	// ghostmodedayDescProfile is the schema descriptor for profile field.
	ghostmodedayDescProfile := ghostmodedayFields[0].Descriptor()
	// ghostmodeday.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	ghostmodeday.ProfileValidator = ghostmodedayDescProfile.Validators[0].(func(string) error)
	// ghostmodedayDescDay is the schema descriptor for day field.
	ghostmodedayDescDay := ghostmodedayFields[1].Descriptor()
	// ghostmodeday.DayValidator is a validator for the "day" field. It is called by the builders before save.
	ghostmodeday.DayValidator = ghostmodedayDescDay.Validators[0].(func(string) error)
	ghostsettingFields := schema.GhostSetting{}.Fields()
	_ = ghostsettingFields
	// ghostsettingDescProfile is the schema descriptor for profile field.
	ghostsettingDescProfile := ghostsettingFields[0].Descriptor()
	// ghostsetting.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	ghostsetting.ProfileValidator = ghostsettingDescProfile.Validators[0].(func(string) error)
	// ghostsettingDescToggle is the schema descriptor for toggle field.
	ghostsettingDescToggle := ghostsettingFields[1].Descriptor()
	// ghostsetting.ToggleValidator is a validator for the "toggle" field. It is called by the builders before save.
	ghostsetting.ToggleValidator = ghostsettingDescToggle.Validators[0].(func(string) error)
	// ghostsettingDescEnabled is the schema descriptor for enabled field.
	ghostsettingDescEnabled := ghostsettingFields[2].Descriptor()
	// ghostsetting.DefaultEnabled holds the default value on creation for the enabled field.
	ghostsetting.DefaultEnabled = ghostsettingDescEnabled.Default.(bool)
	pointeventMixin := schema.PointEvent{}.Mixin()
	pointeventMixinFields0 := pointeventMixin[0].Fields()
	_ = pointeventMixinFields0
	pointeventFields := schema.PointEvent{}.Fields()
	_ = pointeventFields
	// pointeventDescTimestamp is the schema descriptor for timestamp field.
	pointeventDescTimestamp := pointeventMixinFields0[1].Descriptor()
	// pointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointevent.DefaultTimestamp = pointeventDescTimestamp.Default.(func() time.Time)
	// pointeventDescProfile is the schema descriptor for profile field.
	pointeventDescProfile := pointeventFields[0].Descriptor()
	// pointevent.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	pointevent.ProfileValidator = pointeventDescProfile.Validators[0].(func(string) error)
	// pointeventDescAward is the schema descriptor for award field.
	pointeventDescAward := pointeventFields[1].Descriptor()
	// pointevent.AwardValidator is a validator for the "award" field. It is called by the builders before save.
	pointevent.AwardValidator = pointeventDescAward.Validators[0].(func(string) error)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescProfile is the schema descriptor for profile field.
	progressDescProfile := progressFields[0].Descriptor()
	// progress.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	progress.ProfileValidator = progressDescProfile.Validators[0].(func(string) error)
	// progressDescPoints is the schema descriptor for points field.
	progressDescPoints := progressFields[1].Descriptor()
	// progress.DefaultPoints holds the default value on creation for the points field.
	progress.DefaultPoints = progressDescPoints.Default.(int)
	// progress.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	progress.PointsValidator = progressDescPoints.Validators[0].(func(int) error)
	// progressDescStreak is the schema descriptor for streak field.
	progressDescStreak := progressFields[2].Descriptor()
	// progress.DefaultStreak holds the default value on creation for the streak field.
	progress.DefaultStreak = progressDescStreak.Default.(int)
	// progress.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	progress.StreakValidator = progressDescStreak.Validators[0].(func(int) error)
	// progressDescDaysStrong is the schema descriptor for days_strong field.
	progressDescDaysStrong := progressFields[3].Descriptor()
	// progress.DefaultDaysStrong holds the default value on creation for the days_strong field.
	progress.DefaultDaysStrong = progressDescDaysStrong.Default.(int)
	// progress.DaysStrongValidator is a validator for the "days_strong" field. It is called by the builders before save.
	progress.DaysStrongValidator = progressDescDaysStrong.Validators[0].(func(int) error)
	// progressDescIsPremium is the schema descriptor for is_premium field.
	progressDescIsPremium := progressFields[4].Descriptor()
	// progress.DefaultIsPremium holds the default value on creation for the is_premium field.
	progress.DefaultIsPremium = progressDescIsPremium.Default.(bool)
	// progressDescLastActive is the schema descriptor for last_active field.
	progressDescLastActive := progressFields[5].Descriptor()
	// progress.DefaultLastActive holds the default value on creation for the last_active field.
	progress.DefaultLastActive = progressDescLastActive.Default.(string)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[6].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	quizresponseFields := schema.QuizResponse{}.Fields()
	_ = quizresponseFields
	// quizresponseDescQuestionID is the schema descriptor for question_id field.
	quizresponseDescQuestionID := quizresponseFields[0].Descriptor()
	// quizresponse.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	quizresponse.QuestionIDValidator = quizresponseDescQuestionID.Validators[0].(func(int) error)
	// quizresponseDescResponse is the schema descriptor for response field.
	quizresponseDescResponse := quizresponseFields[1].Descriptor()
	// quizresponse.ResponseValidator is a validator for the "response" field. It is called by the builders before save.
	quizresponse.ResponseValidator = quizresponseDescResponse.Validators[0].(func(string) error)
	quizsubmissionMixin := schema.QuizSubmission{}.Mixin()
	quizsubmissionMixinFields0 := quizsubmissionMixin[0].Fields()
	_ = quizsubmissionMixinFields0
	quizsubmissionFields := schema.QuizSubmission{}.Fields()
	_ = quizsubmissionFields
	// quizsubmissionDescTimestamp is the schema descriptor for timestamp field.
	quizsubmissionDescTimestamp := quizsubmissionMixinFields0[1].Descriptor()
	// quizsubmission.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizsubmission.DefaultTimestamp = quizsubmissionDescTimestamp.Default.(func() time.Time)
	// quizsubmissionDescProfile is the schema descriptor for profile field.
	quizsubmissionDescProfile := quizsubmissionFields[1].Descriptor()
	// quizsubmission.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	quizsubmission.ProfileValidator = quizsubmissionDescProfile.Validators[0].(func(string) error)
	// quizsubmissionDescMethod is the schema descriptor for method field.
	quizsubmissionDescMethod := quizsubmissionFields[2].Descriptor()
	// quizsubmission.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	quizsubmission.MethodValidator = quizsubmissionDescMethod.Validators[0].(func(string) error)
	// quizsubmissionDescID is the schema descriptor for id field.
	quizsubmissionDescID := quizsubmissionFields[0].Descriptor()
	// quizsubmission.DefaultID holds the default value on creation for the id field.
	quizsubmission.DefaultID = quizsubmissionDescID.Default.(func() uuid.UUID)
	rewardclaimFields := schema.RewardClaim{}.Fields()
	_ = rewardclaimFields
	// rewardclaimDescProfile is the schema descriptor for profile field.
	rewardclaimDescProfile := rewardclaimFields[0].Descriptor()
	// rewardclaim.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	rewardclaim.ProfileValidator = rewardclaimDescProfile.Validators[0].(func(string) error)
	// rewardclaimDescRewardID is the schema descriptor for reward_id field.
	rewardclaimDescRewardID := rewardclaimFields[1].Descriptor()
	// rewardclaim.RewardIDValidator is a validator for the "reward_id" field. It is called by the builders before save.
	rewardclaim.RewardIDValidator = rewardclaimDescRewardID.Validators[0].(func(int) error)
	// rewardclaimDescClaimedAt is the schema descriptor for claimed_at field.
	rewardclaimDescClaimedAt := rewardclaimFields[2].Descriptor()
	// rewardclaim.DefaultClaimedAt holds the default value on creation for the claimed_at field.
	rewardclaim.DefaultClaimedAt = rewardclaimDescClaimedAt.Default.(func() time.Time)
	socialplatformFields := schema.SocialPlatform{}.Fields()
	_ = socialplatformFields
	// socialplatformDescProfile is the schema descriptor for profile field.
	socialplatformDescProfile := socialplatformFields[0].Descriptor()
	// socialplatform.ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	socialplatform.ProfileValidator = socialplatformDescProfile.Validators[0].(func(string) error)
	// socialplatformDescName is the schema descriptor for name field.
	socialplatformDescName := socialplatformFields[1].Descriptor()
	// socialplatform.NameValidator is a validator for the "name" field. It is called by the builders before save.
	socialplatform.NameValidator = socialplatformDescName.Validators[0].(func(string) error)
	// socialplatformDescConnected is the schema descriptor for connected field.
	socialplatformDescConnected := socialplatformFields[2].Descriptor()
	// socialplatform.DefaultConnected holds the default value on creation for the connected field.
	socialplatform.DefaultConnected = socialplatformDescConnected.Default.(bool)
	// socialplatformDescUsername is the schema descriptor for username field.
	socialplatformDescUsername := socialplatformFields[3].Descriptor()
	// socialplatform.DefaultUsername holds the default value on creation for the username field.
	socialplatform.DefaultUsername = socialplatformDescUsername.Default.(string)
}
