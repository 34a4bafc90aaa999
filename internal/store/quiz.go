package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/crumble/ent"
	"github.com/abhisek/crumble/ent/quizsubmission"
)

// quizRepo implements QuizRepo using the ent client.
type quizRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *quizRepo) Save(ctx context.Context, sub QuizSubmission) (string, error) {
	id := uuid.New()
	if sub.ID != "" {
		parsed, err := uuid.Parse(sub.ID)
		if err != nil {
			return "", fmt.Errorf("quiz submission id: %w", err)
		}
		id = parsed
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	// The counter shares the single connection, so take the sequence
	// before the transaction holds it.
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("begin quiz submission: %w", err)
	}

	_, err = tx.QuizSubmission.Create().
		SetID(id).
		SetSequence(seqNum).
		SetTimestamp(sub.CreatedAt.UTC()).
		SetProfile(sub.Profile).
		SetMethod(sub.Method).
		Save(ctx)
	if err != nil {
		return "", rollback(tx, fmt.Errorf("save quiz submission: %w", err))
	}

	builders := make([]*ent.QuizResponseCreate, 0, len(sub.Answers))
	for qid, response := range sub.Answers {
		builders = append(builders, tx.QuizResponse.Create().
			SetSubmissionID(id).
			SetQuestionID(qid).
			SetResponse(response))
	}
	if len(builders) > 0 {
		if _, err := tx.QuizResponse.CreateBulk(builders...).Save(ctx); err != nil {
			return "", rollback(tx, fmt.Errorf("save quiz responses: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit quiz submission: %w", err)
	}
	return id.String(), nil
}

func (r *quizRepo) Latest(ctx context.Context, profile string) (*QuizSubmission, error) {
	s, err := r.client.QuizSubmission.Query().
		Where(quizsubmission.Profile(profile)).
		Order(ent.Desc(quizsubmission.FieldSequence)).
		WithResponses().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest quiz submission: %w", err)
	}

	sub := &QuizSubmission{
		ID:        s.ID.String(),
		Profile:   s.Profile,
		Method:    s.Method,
		CreatedAt: s.Timestamp,
		Answers:   make(map[int]string, len(s.Edges.Responses)),
	}
	for _, resp := range s.Edges.Responses {
		sub.Answers[resp.QuestionID] = resp.Response
	}
	return sub, nil
}
