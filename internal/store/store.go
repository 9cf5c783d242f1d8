// Package store holds the file-backed question collection served by the API.
package store

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"

	"quizservice/internal/models"
	"quizservice/internal/observability"
	contextutils "quizservice/internal/utils"
)

// Store is an immutable, in-memory collection of validated questions loaded
// from a JSON file at startup. Question indices are positions in the loaded
// slice and stay stable for the lifetime of the process.
type Store struct {
	questions []models.Question
	logger    *observability.Logger
}

// New loads the question file at path. A missing file or malformed JSON
// yields an empty store with a log entry, never an error: the service
// starts regardless and the HTTP layer reports the empty pool per request.
func New(ctx context.Context, path string, logger *observability.Logger) *Store {
	s := &Store{questions: []models.Question{}, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn(ctx, "Question file not found, starting with empty store", map[string]interface{}{
				"file_path": path,
			})
		} else {
			logger.Error(ctx, "Failed to read question file", err, map[string]interface{}{
				"file_path": path,
			})
		}
		return s
	}

	var rawQuestions []json.RawMessage
	if err := json.Unmarshal(data, &rawQuestions); err != nil {
		wrapped := contextutils.WrapError(contextutils.ErrStoreFileMalformed, err.Error())
		logger.Error(ctx, "Question file is not valid JSON, starting with empty store", wrapped, map[string]interface{}{
			"file_path": path,
		})
		return s
	}

	for i, raw := range rawQuestions {
		question, err := decodeQuestion(raw)
		if err != nil {
			logger.Warn(ctx, "Skipping question from JSON due to validation error", map[string]interface{}{
				"error": err.Error(),
				"index": i,
			})
			continue
		}
		s.questions = append(s.questions, *question)
	}

	logger.Info(ctx, "Question store loaded", map[string]interface{}{
		"file_path": path,
		"questions": len(s.questions),
	})

	return s
}

// NewFromQuestions builds a store from an in-memory slice. Used in tests and
// by the CLI validate path.
func NewFromQuestions(questions []models.Question, logger *observability.Logger) *Store {
	return &Store{questions: questions, logger: logger}
}

// decodeQuestion runs the schema gate and field validation on one record.
func decodeQuestion(raw json.RawMessage) (*models.Question, error) {
	if err := models.CheckQuestionSchema(raw); err != nil {
		return nil, err
	}

	var candidate models.CandidateQuestion
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, contextutils.WrapError(contextutils.ErrValidationFailed, err.Error())
	}
	return candidate.Validate()
}

// Len returns the number of loaded questions.
func (s *Store) Len() int {
	return len(s.questions)
}

// Get returns the question at index, or an error when index is out of range.
func (s *Store) Get(index int) (*models.Question, error) {
	if index < 0 || index >= len(s.questions) {
		return nil, contextutils.WrapErrorf(contextutils.ErrQuestionNotFound, "question index %d out of range", index)
	}
	q := s.questions[index]
	return &q, nil
}

// All returns a copy of every loaded question in load order.
func (s *Store) All() []models.Question {
	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Select returns count questions drawn uniformly at random without
// replacement, optionally restricted to a difficulty (case-insensitive).
// When the matching set does not exceed count, the whole set is returned
// unchanged, in store order. The store itself is never mutated.
func (s *Store) Select(ctx context.Context, count int, difficulty string) []models.IndexedQuestion {
	_, span := observability.TraceStoreFunction(ctx, "Select",
		observability.AttributeNumQuestions(count),
		observability.AttributeDifficulty(difficulty),
	)
	defer span.End()

	candidates := make([]int, 0, len(s.questions))
	for i, q := range s.questions {
		if difficulty == "" || q.DifficultyMatches(difficulty) {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) > count {
		rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		candidates = candidates[:count]
	}

	selected := make([]models.IndexedQuestion, 0, len(candidates))
	for _, idx := range candidates {
		selected = append(selected, models.NewIndexedQuestion(idx, s.questions[idx]))
	}
	return selected
}
