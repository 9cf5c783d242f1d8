// Package models defines the data structures used throughout the quiz service
// and the validation rules that gate entry into the question store.
package models

import (
	"fmt"
	"strings"

	contextutils "quizservice/internal/utils"
)

// OptionKeys is the exact key set every valid options map must carry
var OptionKeys = []string{"A", "B", "C", "D"}

// Question represents a validated multiple-choice question. Once validated it
// is immutable; invalid candidates never become Questions.
type Question struct {
	Question   string            `json:"question" yaml:"question"`
	Options    map[string]string `json:"options" yaml:"options"`
	Answer     string            `json:"answer" yaml:"answer"`
	Difficulty string            `json:"difficulty" yaml:"difficulty"`
}

// DifficultyMatches compares difficulties case-insensitively. Difficulty is
// stored as provided and only normalized for comparison.
func (q *Question) DifficultyMatches(difficulty string) bool {
	return strings.EqualFold(q.Difficulty, difficulty)
}

// CandidateQuestion is an unvalidated record with question/options/answer/
// difficulty fields, as decoded from the store file or assembled by the text
// parser, prior to schema enforcement.
type CandidateQuestion struct {
	Question   string            `json:"question"`
	Options    map[string]string `json:"options"`
	Answer     string            `json:"answer"`
	Difficulty string            `json:"difficulty"`
}

// Validate applies the question schema rules in order and produces a validated
// Question, or an AppError naming the offending field. It is pure: no side
// effects, the candidate is not modified.
func (c *CandidateQuestion) Validate() (*Question, error) {
	if strings.TrimSpace(c.Question) == "" {
		return nil, validationError("question", "must be non-empty")
	}

	if len(c.Options) != 4 {
		return nil, validationError("options", fmt.Sprintf("must provide exactly 4 options, got %d", len(c.Options)))
	}
	for _, key := range OptionKeys {
		value, ok := c.Options[key]
		if !ok {
			return nil, validationError("options", "option keys must be A, B, C, and D")
		}
		if strings.TrimSpace(value) == "" {
			return nil, validationError("options", fmt.Sprintf("option %s must be a non-empty string", key))
		}
	}

	if len(c.Answer) != 1 {
		return nil, validationError("answer", "must be a single option letter")
	}
	if _, ok := c.Options[c.Answer]; !ok {
		return nil, validationError("answer", "must be one of the provided options (A, B, C, or D)")
	}

	if strings.TrimSpace(c.Difficulty) == "" {
		return nil, validationError("difficulty", "must be non-empty")
	}

	return &Question{
		Question:   c.Question,
		Options:    c.Options,
		Answer:     c.Answer,
		Difficulty: c.Difficulty,
	}, nil
}

func validationError(field, reason string) error {
	return contextutils.NewAppError(
		contextutils.ErrorCodeValidationFailed,
		contextutils.SeverityWarn,
		fmt.Sprintf("Invalid %s", field),
		reason,
	)
}

// UserAnswer represents a submitted answer for a stored question. Binding tags
// reject structurally invalid requests before the handler runs.
type UserAnswer struct {
	QuestionIndex *int   `json:"question_index" binding:"required"`
	UserOption    string `json:"user_option" binding:"required,len=1"`
}

// AnswerResult is the response body of the answer-check endpoint
type AnswerResult struct {
	QuestionIndex int    `json:"question_index"`
	UserAnswer    string `json:"user_answer"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// IndexedQuestion pairs a served question with its canonical store index. The
// index is part of the public contract so callers can submit answers against
// the questions they were served.
type IndexedQuestion struct {
	QuestionIndex int               `json:"question_index"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	Answer        string            `json:"answer"`
	Difficulty    string            `json:"difficulty"`
}

// NewIndexedQuestion builds the wire representation of a stored question
func NewIndexedQuestion(index int, q Question) IndexedQuestion {
	return IndexedQuestion{
		QuestionIndex: index,
		Question:      q.Question,
		Options:       q.Options,
		Answer:        q.Answer,
		Difficulty:    q.Difficulty,
	}
}
