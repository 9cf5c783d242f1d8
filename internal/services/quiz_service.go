// Package services contains the business logic between the HTTP handlers
// and the question store.
package services

import (
	"context"
	"strings"

	"quizservice/internal/models"
	"quizservice/internal/observability"
	"quizservice/internal/store"
	contextutils "quizservice/internal/utils"
)

// QuizService answers question-selection and answer-checking requests
// against the loaded store.
type QuizService struct {
	store  *store.Store
	logger *observability.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(s *store.Store, logger *observability.Logger) *QuizService {
	return &QuizService{store: s, logger: logger}
}

// QuestionCount returns the number of questions currently loaded.
func (s *QuizService) QuestionCount() int {
	return s.store.Len()
}

// GetQuestions selects count random questions, optionally filtered by
// difficulty. An empty selection is QUESTION_NOT_FOUND so the handler can
// answer 404 naming the criteria that produced it.
func (s *QuizService) GetQuestions(ctx context.Context, count int, difficulty string) (result []models.IndexedQuestion, err error) {
	ctx, span := observability.TraceFunction(ctx, "quiz", "GetQuestions",
		observability.AttributeNumQuestions(count),
		observability.AttributeDifficulty(difficulty),
	)
	defer observability.FinishSpan(span, &err)

	selected := s.store.Select(ctx, count, difficulty)
	if len(selected) == 0 {
		s.logger.Warn(ctx, "No questions found for criteria", map[string]interface{}{
			"num_questions": count,
			"difficulty":    difficulty,
		})
		return nil, contextutils.WrapErrorf(contextutils.ErrQuestionNotFound,
			"no questions found for the specified criteria (difficulty: %s, count: %d)", difficulty, count)
	}

	s.logger.Info(ctx, "Selected questions", map[string]interface{}{
		"selected": len(selected),
	})
	return selected, nil
}

// CheckAnswer compares the user's option against the stored answer for the
// question at index. The comparison is case-insensitive and the returned
// result echoes both sides upper-cased.
func (s *QuizService) CheckAnswer(ctx context.Context, index int, userOption string) (result *models.AnswerResult, err error) {
	ctx, span := observability.TraceFunction(ctx, "quiz", "CheckAnswer",
		observability.AttributeQuestionIndex(index),
	)
	defer observability.FinishSpan(span, &err)

	if index < 0 || index >= s.store.Len() {
		s.logger.Warn(ctx, "Invalid question index received", map[string]interface{}{
			"question_index": index,
			"store_size":     s.store.Len(),
		})
		return nil, contextutils.WrapErrorf(contextutils.ErrInvalidAnswerIndex, "invalid question index %d", index)
	}

	question, err := s.store.Get(index)
	if err != nil {
		return nil, err
	}

	correctAnswer := strings.ToUpper(strings.TrimSpace(question.Answer))
	if correctAnswer == "" {
		s.logger.Error(ctx, "Stored question has no correct answer", nil, map[string]interface{}{
			"question_index": index,
		})
		return nil, contextutils.WrapErrorf(contextutils.ErrInternalError,
			"could not retrieve correct answer for question index %d", index)
	}

	userAnswer := strings.ToUpper(strings.TrimSpace(userOption))
	isCorrect := userAnswer == correctAnswer

	s.logger.Info(ctx, "Answer checked", map[string]interface{}{
		"question_index": index,
		"user_answer":    userAnswer,
		"correct_answer": correctAnswer,
		"is_correct":     isCorrect,
	})

	return &models.AnswerResult{
		QuestionIndex: index,
		UserAnswer:    userAnswer,
		IsCorrect:     isCorrect,
		CorrectAnswer: correctAnswer,
	}, nil
}
