// Package companion runs the user-facing operations of crumble against the
// store: quiz submissions, point awards, reward claims, ghost mode and
// platform records.
package companion

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/abhisek/crumble/internal/progression"
	"github.com/abhisek/crumble/internal/quiz"
	"github.com/abhisek/crumble/internal/rewards"
	"github.com/abhisek/crumble/internal/store"
	"github.com/abhisek/crumble/internal/templates"
)

// ErrUnknownTemplate is returned when no template matches a method and tone.
var ErrUnknownTemplate = errors.New("unknown template")

// Resetter deletes everything recorded for a profile.
type Resetter interface {
	Reset(ctx context.Context, profile string) error
}

// Repos groups the repositories the service works with.
type Repos struct {
	Progress store.ProgressRepo
	Claims   store.ClaimRepo
	Quiz     store.QuizRepo
	Ghost    store.GhostRepo
	Events   store.EventRepo
	Resetter Resetter
}

// ReposFrom returns the repositories of st.
func ReposFrom(st *store.Store) Repos {
	return Repos{
		Progress: st.ProgressRepo(),
		Claims:   st.ClaimRepo(),
		Quiz:     st.QuizRepo(),
		Ghost:    st.GhostRepo(),
		Events:   st.EventRepo(),
		Resetter: st,
	}
}

// Options tune a Service. Zero values pick the defaults.
type Options struct {
	// Location is the zone calendar days are counted in. Default UTC.
	Location *time.Location
	// Now is the clock. Default time.Now.
	Now func() time.Time
	// Affirmer picks affirmations. Default uses the global random source.
	Affirmer *templates.Affirmer
}

// Service performs the operations of one profile.
type Service struct {
	profile  string
	repos    Repos
	loc      *time.Location
	now      func() time.Time
	affirmer *templates.Affirmer

	// mu serializes read-modify-write of the progress row.
	mu sync.Mutex
}

// NewService creates a Service for profile.
func NewService(profile string, repos Repos, opts Options) *Service {
	s := &Service{
		profile:  profile,
		repos:    repos,
		loc:      opts.Location,
		now:      opts.Now,
		affirmer: opts.Affirmer,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.affirmer == nil {
		s.affirmer = templates.NewAffirmer(nil)
	}
	return s
}

// Profile returns the profile the service acts for.
func (s *Service) Profile() string {
	return s.profile
}

func (s *Service) clock() time.Time {
	return s.now().In(s.loc)
}

// SubmitQuiz scores answers, stores the submission and awards quiz points.
// A failed award is logged and leaves Award nil; the stored submission
// still counts as the latest recommendation.
func (s *Service) SubmitQuiz(ctx context.Context, answers quiz.AnswerSet) (*QuizOutcome, error) {
	result := quiz.Evaluate(answers)

	raw := make(map[int]string, len(answers))
	for id, v := range answers {
		raw[int(id)] = v
	}
	id, err := s.repos.Quiz.Save(ctx, store.QuizSubmission{
		Profile:   s.profile,
		Answers:   raw,
		Method:    string(result.Method),
		CreatedAt: s.clock(),
	})
	if err != nil {
		return nil, fmt.Errorf("save quiz: %w", err)
	}

	log.WithFields(log.Fields{
		"profile":    s.profile,
		"submission": id,
		"method":     result.Method,
		"answered":   len(answers),
	}).Info("quiz submitted")

	out := &QuizOutcome{SubmissionID: id, Result: result}
	award, err := s.Award(ctx, progression.AwardQuiz)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"profile":    s.profile,
			"submission": id,
		}).Warn("quiz points not awarded")
		return out, nil
	}
	out.Award = award
	return out, nil
}

// UseTemplate returns the template for method and tone filled with name,
// and awards template points.
func (s *Service) UseTemplate(ctx context.Context, method quiz.Method, tone templates.Tone, name string) (*TemplateOutcome, error) {
	tpl, ok := templates.Find(method, tone)
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", method, tone, ErrUnknownTemplate)
	}
	award, err := s.Award(ctx, progression.AwardTemplate)
	if err != nil {
		return nil, err
	}
	return &TemplateOutcome{Template: tpl, Message: tpl.Fill(name), Award: *award}, nil
}

// Affirmation returns a random affirmation and awards affirmation points.
func (s *Service) Affirmation(ctx context.Context) (*AffirmationOutcome, error) {
	text := s.affirmer.Next()
	award, err := s.Award(ctx, progression.AwardAffirmation)
	if err != nil {
		return nil, err
	}
	return &AffirmationOutcome{Text: text, Award: *award}, nil
}

// Award adds the points of a to the profile, updates the streak and
// reports what the award completed or unlocked.
func (s *Service) Award(ctx context.Context, a progression.Award) (*AwardResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, err := s.loadActivity(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	next := progression.ApplyPoints(act, a.Points(), now)
	if err := s.saveActivity(ctx, next, now); err != nil {
		return nil, err
	}

	// The history is informational; a failed append does not undo the award.
	if err := s.repos.Events.AppendPointEvent(ctx, store.PointEventData{
		Profile: s.profile,
		Award:   string(a),
		Points:  a.Points(),
	}); err != nil {
		log.WithError(err).WithField("profile", s.profile).Warn("point event not recorded")
	}

	res := &AwardResult{
		Award:           a,
		Points:          a.Points(),
		Before:          progression.Derive(act.Progress),
		After:           progression.Derive(next.Progress),
		Streak:          next.Progress.Streak,
		NewAchievements: newAchievements(act.Progress, next.Progress),
		NewRewards:      newRewards(act.Progress.Points, next.Progress.Points),
	}

	log.WithFields(log.Fields{
		"profile":    s.profile,
		"award":      a,
		"points":     next.Progress.Points,
		"streak":     next.Progress.Streak,
		"user_level": res.After.Level,
	}).Debug("points awarded")
	if res.LevelUp() {
		log.WithFields(log.Fields{"profile": s.profile, "user_level": res.After.Level}).Info("level up")
	}
	return res, nil
}

// Status returns progress, derived values, achievements and rewards.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	act, err := s.loadActivity(ctx)
	if err != nil {
		return nil, err
	}
	claimed, err := s.repos.Claims.ClaimedIDs(ctx, s.profile)
	if err != nil {
		return nil, fmt.Errorf("load claims: %w", err)
	}
	settings, err := s.ghostSettings(ctx)
	if err != nil {
		return nil, err
	}

	st := &Status{
		Profile:      s.profile,
		Progress:     act.Progress,
		Derived:      progression.Derive(act.Progress),
		LastActive:   act.LastActive,
		Achievements: rewards.Achievements(act.Progress),
		Rewards:      rewards.Build(act.Progress.Points, claimed, nil).Rewards(),
		Ghost:        settings,
	}

	latest, err := s.repos.Quiz.Latest(ctx, s.profile)
	if err != nil {
		return nil, fmt.Errorf("load latest quiz: %w", err)
	}
	if latest != nil {
		st.LastMethod, _ = quiz.ParseMethod(latest.Method)
	}
	return st, nil
}

// Rewards returns the reward catalog with unlock and claim state.
func (s *Service) Rewards(ctx context.Context) ([]rewards.Reward, error) {
	ledger, err := s.ledger(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Rewards(), nil
}

// ClaimReward claims a reward. It fails with rewards.ErrNotUnlocked,
// rewards.ErrAlreadyClaimed or rewards.ErrUnknownReward.
func (s *Service) ClaimReward(ctx context.Context, rewardID int) (rewards.Reward, error) {
	ledger, err := s.ledger(ctx)
	if err != nil {
		return rewards.Reward{}, err
	}
	r, err := ledger.Claim(ctx, rewardID)
	if err != nil {
		log.WithFields(log.Fields{
			"profile":   s.profile,
			"reward_id": rewardID,
		}).WithError(err).Debug("claim rejected")
		return r, err
	}
	log.WithFields(log.Fields{
		"profile":   s.profile,
		"reward_id": rewardID,
		"title":     r.Title,
	}).Info("reward claimed")
	return r, nil
}

// History returns the most recent point awards, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.PointEventRecord, error) {
	return s.repos.Events.QueryPointEvents(ctx, s.profile, store.QueryOpts{Limit: limit})
}

// Reset deletes everything recorded for the profile.
func (s *Service) Reset(ctx context.Context) error {
	if s.repos.Resetter == nil {
		return errors.New("reset not supported")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repos.Resetter.Reset(ctx, s.profile); err != nil {
		return fmt.Errorf("reset %s: %w", s.profile, err)
	}
	log.WithField("profile", s.profile).Info("profile reset")
	return nil
}

func (s *Service) ledger(ctx context.Context) (*rewards.Ledger, error) {
	act, err := s.loadActivity(ctx)
	if err != nil {
		return nil, err
	}
	claimed, err := s.repos.Claims.ClaimedIDs(ctx, s.profile)
	if err != nil {
		return nil, fmt.Errorf("load claims: %w", err)
	}
	return rewards.Build(act.Progress.Points, claimed, &claimRecorder{
		claims:  s.repos.Claims,
		profile: s.profile,
		now:     s.clock,
	}), nil
}

// loadActivity reads the progress row and the ghost-mode day count.
// While ghost mode is on, today is counted as a ghost-mode day first.
func (s *Service) loadActivity(ctx context.Context) (progression.Activity, error) {
	if err := s.touchGhostDay(ctx); err != nil {
		return progression.Activity{}, err
	}

	rec, err := s.repos.Progress.Get(ctx, s.profile)
	if err != nil {
		return progression.Activity{}, fmt.Errorf("load progress: %w", err)
	}
	days, err := s.repos.Ghost.DayCount(ctx, s.profile)
	if err != nil {
		return progression.Activity{}, fmt.Errorf("load ghost days: %w", err)
	}

	act := progression.Activity{Progress: progression.UserProgress{GhostModeDays: days}}
	if rec == nil {
		return act, nil
	}
	act.Progress.Points = rec.Points
	act.Progress.Streak = rec.Streak
	act.Progress.DaysStrong = rec.DaysStrong
	act.Progress.IsPremium = rec.IsPremium
	if rec.LastActive != "" {
		last, err := time.ParseInLocation(store.DayLayout, rec.LastActive, s.loc)
		if err != nil {
			return progression.Activity{}, fmt.Errorf("parse last active %q: %w", rec.LastActive, err)
		}
		act.LastActive = last
	}
	act.Progress = act.Progress.Normalized()
	return act, nil
}

func (s *Service) saveActivity(ctx context.Context, act progression.Activity, now time.Time) error {
	rec := store.ProgressRecord{
		Points:     act.Progress.Points,
		Streak:     act.Progress.Streak,
		DaysStrong: act.Progress.DaysStrong,
		IsPremium:  act.Progress.IsPremium,
		UpdatedAt:  now,
	}
	if !act.LastActive.IsZero() {
		rec.LastActive = act.LastActive.In(s.loc).Format(store.DayLayout)
	}
	if err := s.repos.Progress.Save(ctx, s.profile, rec); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// newAchievements returns the achievements completed in after but not before.
func newAchievements(before, after progression.UserProgress) []rewards.Achievement {
	had := rewards.EvaluateAchievements(before, progression.CrumbleCoins(before.Points))
	var out []rewards.Achievement
	for _, a := range rewards.Achievements(after) {
		if a.Completed && !slices.Contains(had, a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// newRewards returns the rewards unlocked between two point totals.
func newRewards(before, after int) []rewards.Reward {
	var out []rewards.Reward
	for _, r := range rewards.DefaultRewards() {
		if !rewards.Unlocked(r, before) && rewards.Unlocked(r, after) {
			r.Unlocked = true
			out = append(out, r)
		}
	}
	return out
}

// claimRecorder writes claims through to the store. The unique constraint
// on the claims table turns a concurrent second claim into ErrAlreadyClaimed.
type claimRecorder struct {
	claims  store.ClaimRepo
	profile string
	now     func() time.Time
}

func (r *claimRecorder) RecordClaim(ctx context.Context, rewardID int) error {
	err := r.claims.Record(ctx, r.profile, rewardID, r.now())
	if errors.Is(err, store.ErrDuplicateClaim) {
		return fmt.Errorf("%w: %w", rewards.ErrAlreadyClaimed, err)
	}
	return err
}

var _ rewards.ClaimRecorder = (*claimRecorder)(nil)
