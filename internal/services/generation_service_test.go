package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizservice/internal/config"
	"quizservice/internal/observability"
	"quizservice/internal/parser"
)

type fakeProvider struct {
	response string
	err      error
	prompt   string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func newGenerationService(provider GenerationProvider) *GenerationService {
	logger := observability.NewNopLogger()
	return NewGenerationService(provider, parser.NewParser(logger), logger)
}

func TestGenerationService_NoProvider(t *testing.T) {
	svc := newGenerationService(nil)

	assert.False(t, svc.Enabled())
	assert.Empty(t, svc.GenerateRaw(context.Background(), "fractions", "easy", 5))
	assert.Empty(t, svc.GenerateQuestions(context.Background(), "fractions", "easy", 5))
}

func TestGenerationService_ProviderError(t *testing.T) {
	svc := newGenerationService(&fakeProvider{err: errors.New("backend down")})

	assert.Empty(t, svc.GenerateRaw(context.Background(), "fractions", "easy", 5))
}

func TestGenerationService_GenerateQuestions(t *testing.T) {
	provider := &fakeProvider{response: `Question 1: What is 1/2 of 10?
Difficulty: easy
A) 5
B) 2
C) 20
D) 1
Correct Answer: A
`}
	svc := newGenerationService(provider)

	require.True(t, svc.Enabled())

	questions := svc.GenerateQuestions(context.Background(), "fractions", "easy", 1)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is 1/2 of 10?", questions[0].Question)
	assert.Equal(t, "A", questions[0].Answer)
}

func TestGenerationService_UnparseableOutput(t *testing.T) {
	svc := newGenerationService(&fakeProvider{response: "I cannot help with that."})

	assert.Empty(t, svc.GenerateQuestions(context.Background(), "fractions", "easy", 5))
}

func TestGenerationService_PromptShape(t *testing.T) {
	provider := &fakeProvider{response: ""}
	svc := newGenerationService(provider)

	svc.GenerateRaw(context.Background(), "geometry", "hard", 7)

	assert.Contains(t, provider.prompt, `Generate 7 hard multiple-choice questions on the topic "geometry".`)
	assert.Contains(t, provider.prompt, "Question 1:")
	assert.Contains(t, provider.prompt, "Correct Answer:")
	assert.Contains(t, provider.prompt, "numbered from 1 to 7")
}

func TestBuildQuestionPrompt(t *testing.T) {
	prompt := BuildQuestionPrompt("fractions", "easy", 3)

	assert.Contains(t, prompt, `Generate 3 easy multiple-choice questions on the topic "fractions".`)
	assert.Contains(t, prompt, "Difficulty: easy")
	assert.Contains(t, prompt, "A) ...")
	assert.Contains(t, prompt, "... (up to Question 3)")
}

func TestNewGenerationProvider(t *testing.T) {
	t.Run("disabled when unconfigured", func(t *testing.T) {
		provider, err := NewGenerationProvider(context.Background(), &config.AIConfig{})
		require.NoError(t, err)
		assert.Nil(t, provider)
	})

	t.Run("openai provider", func(t *testing.T) {
		provider, err := NewGenerationProvider(context.Background(), &config.AIConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
			APIKey:   "test-key",
		})
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.Equal(t, "openai", provider.Name())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewGenerationProvider(context.Background(), &config.AIConfig{
			Provider: "carrier-pigeon",
			APIKey:   "test-key",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})
}
