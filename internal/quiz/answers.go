package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidAnswers wraps answer input that does not fit the question bank.
var ErrInvalidAnswers = errors.New("invalid answers")

const answersSchemaURL = "schema://quiz-answers.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// AnswersSchema builds the JSON Schema for an answer file from the bank:
// an object keyed by question id whose values are that question's options.
func AnswersSchema() map[string]any {
	props := make(map[string]any, len(bank))
	for _, q := range bank {
		values := make([]any, len(q.Options))
		for i, o := range q.Options {
			values[i] = o.Value
		}
		props[strconv.Itoa(int(q.ID))] = map[string]any{
			"type": "string",
			"enum": values,
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func answersSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		defBytes, err := json.Marshal(AnswersSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(answersSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(answersSchemaURL)
	})
	return compiledSchema, compileErr
}

// ParseAnswers validates a JSON answer document such as {"1":"long","4":"face"}
// and converts it to an AnswerSet.
func ParseAnswers(raw []byte) (AnswerSet, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidAnswers, err)
	}

	schema, err := answersSchema()
	if err != nil {
		return nil, fmt.Errorf("compile answers schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}

	var byKey map[string]string
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	answers := make(AnswerSet, len(byKey))
	for k, v := range byKey {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: question %q", ErrInvalidAnswers, k)
		}
		answers[QuestionID(id)] = v
	}
	return answers, nil
}

// ParsePairs converts "id=value" pairs (as given on the command line) into
// an AnswerSet, checking each against the bank.
func ParsePairs(pairs []string) (AnswerSet, error) {
	answers := make(AnswerSet, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not id=value", ErrInvalidAnswers, p)
		}
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("%w: question %q", ErrInvalidAnswers, k)
		}
		q, ok := QuestionByID(QuestionID(id))
		if !ok {
			return nil, fmt.Errorf("%w: no question %d", ErrInvalidAnswers, id)
		}
		v = strings.TrimSpace(v)
		if !q.HasOption(v) {
			return nil, fmt.Errorf("%w: %q is not an option for question %d", ErrInvalidAnswers, v, id)
		}
		answers[q.ID] = v
	}
	return answers, nil
}
