// Package handlers contains the gin HTTP handlers for the quiz API.
package handlers

import (
	"net/http"
	"strconv"

	"quizservice/internal/config"
	"quizservice/internal/models"
	"quizservice/internal/observability"
	"quizservice/internal/services"
	contextutils "quizservice/internal/utils"

	"github.com/gin-gonic/gin"
)

// QuizHandler serves question selection, answer checking and on-demand
// generation.
type QuizHandler struct {
	quizService       *services.QuizService
	generationService *services.GenerationService
	logger            *observability.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *services.QuizService, generationService *services.GenerationService, logger *observability.Logger) *QuizHandler {
	return &QuizHandler{
		quizService:       quizService,
		generationService: generationService,
		logger:            logger,
	}
}

// GetQuestions handles GET /questions/. num_questions defaults to 10 and
// must lie in [1, 50]; difficulty is an optional case-insensitive filter.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	ctx, span := observability.TraceHandlerFunction(c.Request.Context(), "GetQuestions")
	defer span.End()

	numQuestions := config.DefaultNumQuestions
	if raw := c.Query("num_questions"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			HandleValidationError(c, "num_questions", raw, "must be an integer")
			return
		}
		numQuestions = n
	}
	if numQuestions < config.MinNumQuestions || numQuestions > config.MaxNumQuestions {
		HandleValidationError(c, "num_questions", numQuestions, "must be between 1 and 50")
		return
	}

	difficulty := c.Query("difficulty")

	h.logger.Info(ctx, "GET /questions/ request received", map[string]interface{}{
		"num_questions": numQuestions,
		"difficulty":    difficulty,
	})

	selected, err := h.quizService.GetQuestions(ctx, numQuestions, difficulty)
	if err != nil {
		HandleAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, selected)
}

// CheckAnswer handles POST /answer/. The body must carry a question_index
// and a single-letter user_option in A-D (either case).
func (h *QuizHandler) CheckAnswer(c *gin.Context) {
	ctx, span := observability.TraceHandlerFunction(c.Request.Context(), "CheckAnswer")
	defer span.End()

	var answer models.UserAnswer
	if err := c.ShouldBindJSON(&answer); err != nil {
		HandleValidationError(c, "request body", nil, err.Error())
		return
	}

	if !contextutils.IsValidOption(answer.UserOption) {
		HandleValidationError(c, "user_option", answer.UserOption, "must be A, B, C, or D")
		return
	}

	h.logger.Info(ctx, "POST /answer/ request received", map[string]interface{}{
		"question_index": *answer.QuestionIndex,
		"user_option":    answer.UserOption,
	})

	result, err := h.quizService.CheckAnswer(ctx, *answer.QuestionIndex, answer.UserOption)
	if err != nil {
		HandleAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateQuestionsRequest is the body of POST /questions/generate.
type GenerateQuestionsRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

// GenerateQuestions handles POST /questions/generate. Requires a configured
// generation backend; the store itself is never modified.
func (h *QuizHandler) GenerateQuestions(c *gin.Context) {
	ctx, span := observability.TraceHandlerFunction(c.Request.Context(), "GenerateQuestions")
	defer span.End()

	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleValidationError(c, "request body", nil, err.Error())
		return
	}

	if req.Topic == "" {
		req.Topic = config.DefaultGenerationTopic
	}
	if req.Difficulty == "" {
		req.Difficulty = config.DefaultGenerationLevel
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = config.DefaultGenerationCount
	}
	if req.NumQuestions < 1 || req.NumQuestions > config.MaxGenerationCount {
		HandleValidationError(c, "num_questions", req.NumQuestions, "must be between 1 and 50")
		return
	}

	if !h.generationService.Enabled() {
		HandleAppError(c, contextutils.ErrGenerationUnavailable)
		return
	}

	h.logger.Info(ctx, "POST /questions/generate request received", map[string]interface{}{
		"topic":         req.Topic,
		"difficulty":    req.Difficulty,
		"num_questions": req.NumQuestions,
	})

	questions := h.generationService.GenerateQuestions(ctx, req.Topic, req.Difficulty, req.NumQuestions)
	if len(questions) == 0 {
		HandleAppError(c, contextutils.WrapErrorf(contextutils.ErrGenerationFailed,
			"backend produced no parseable questions for topic %q", req.Topic))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(questions),
		"questions": questions,
	})
}

// Health handles GET /health.
func (h *QuizHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "quiz-service",
		"questions": h.quizService.QuestionCount(),
	})
}
