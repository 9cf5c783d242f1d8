package services

import (
	"context"

	"quizservice/internal/models"
	"quizservice/internal/observability"
	"quizservice/internal/parser"
)

// GenerationService produces fresh quiz questions through a backend model.
// Every backend failure degrades to an empty result: callers only ever see
// zero or more questions, never a transport error.
type GenerationService struct {
	provider GenerationProvider
	parser   *parser.Parser
	logger   *observability.Logger
}

// NewGenerationService creates a new GenerationService. provider may be nil,
// in which case every generation attempt yields an empty result.
func NewGenerationService(provider GenerationProvider, p *parser.Parser, logger *observability.Logger) *GenerationService {
	return &GenerationService{provider: provider, parser: p, logger: logger}
}

// Enabled reports whether a backend is configured.
func (s *GenerationService) Enabled() bool {
	return s.provider != nil
}

// GenerateRaw asks the backend for quiz text for a topic, difficulty and
// count. On any failure it logs and returns the empty string.
func (s *GenerationService) GenerateRaw(ctx context.Context, topic, difficulty string, count int) string {
	ctx, span := observability.TraceGenerationFunction(ctx, "GenerateRaw",
		observability.AttributeTopic(topic),
		observability.AttributeDifficulty(difficulty),
		observability.AttributeNumQuestions(count),
	)
	defer span.End()

	if s.provider == nil {
		s.logger.Warn(ctx, "AI backend not available, cannot generate quiz", nil)
		return ""
	}
	span.SetAttributes(observability.AttributeProvider(s.provider.Name()))

	prompt := BuildQuestionPrompt(topic, difficulty, count)

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error(ctx, "Error during AI content generation", err, map[string]interface{}{
			"provider": s.provider.Name(),
			"topic":    topic,
		})
		return ""
	}

	return text
}

// GenerateQuestions generates raw quiz text and parses it into validated
// questions. Failures at either stage yield an empty slice.
func (s *GenerationService) GenerateQuestions(ctx context.Context, topic, difficulty string, count int) []models.Question {
	raw := s.GenerateRaw(ctx, topic, difficulty, count)
	if raw == "" {
		return []models.Question{}
	}
	return s.parser.Parse(ctx, raw)
}
