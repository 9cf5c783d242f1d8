package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contextutils "quizservice/internal/utils"
)

func validCandidate() CandidateQuestion {
	return CandidateQuestion{
		Question: "What is 1/2 + 1/4?",
		Options: map[string]string{
			"A": "3/4",
			"B": "1/4",
			"C": "2/6",
			"D": "1/8",
		},
		Answer:     "A",
		Difficulty: "easy",
	}
}

func TestCandidateQuestion_Validate_Valid(t *testing.T) {
	candidate := validCandidate()

	question, err := candidate.Validate()
	require.NoError(t, err)
	require.NotNil(t, question)

	assert.Equal(t, candidate.Question, question.Question)
	assert.Equal(t, candidate.Options, question.Options)
	assert.Equal(t, "A", question.Answer)
	assert.Equal(t, "easy", question.Difficulty)
}

func TestCandidateQuestion_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CandidateQuestion)
	}{
		{
			name:   "empty question",
			mutate: func(c *CandidateQuestion) { c.Question = "   " },
		},
		{
			name:   "too few options",
			mutate: func(c *CandidateQuestion) { delete(c.Options, "D") },
		},
		{
			name: "wrong option key",
			mutate: func(c *CandidateQuestion) {
				delete(c.Options, "D")
				c.Options["E"] = "something"
			},
		},
		{
			name:   "blank option value",
			mutate: func(c *CandidateQuestion) { c.Options["B"] = "  " },
		},
		{
			name:   "answer not a single letter",
			mutate: func(c *CandidateQuestion) { c.Answer = "AB" },
		},
		{
			name:   "answer not an option key",
			mutate: func(c *CandidateQuestion) { c.Answer = "E" },
		},
		{
			name:   "lowercase answer does not match option keys",
			mutate: func(c *CandidateQuestion) { c.Answer = "a" },
		},
		{
			name:   "empty answer",
			mutate: func(c *CandidateQuestion) { c.Answer = "" },
		},
		{
			name:   "empty difficulty",
			mutate: func(c *CandidateQuestion) { c.Difficulty = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			tt.mutate(&candidate)

			question, err := candidate.Validate()
			assert.Nil(t, question)
			require.Error(t, err)
			assert.Equal(t, contextutils.ErrorCodeValidationFailed, contextutils.GetErrorCode(err))
		})
	}
}

func TestQuestion_DifficultyMatches(t *testing.T) {
	q := Question{Difficulty: "Easy"}

	assert.True(t, q.DifficultyMatches("easy"))
	assert.True(t, q.DifficultyMatches("EASY"))
	assert.True(t, q.DifficultyMatches("Easy"))
	assert.False(t, q.DifficultyMatches("hard"))
}

func TestNewIndexedQuestion(t *testing.T) {
	candidate := validCandidate()
	question, err := candidate.Validate()
	require.NoError(t, err)

	indexed := NewIndexedQuestion(7, *question)

	assert.Equal(t, 7, indexed.QuestionIndex)
	assert.Equal(t, question.Question, indexed.Question)
	assert.Equal(t, question.Answer, indexed.Answer)
}

func TestCheckQuestionSchema(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		raw, err := json.Marshal(validCandidate())
		require.NoError(t, err)

		assert.NoError(t, CheckQuestionSchema(raw))
	})

	t.Run("missing field", func(t *testing.T) {
		raw := json.RawMessage(`{"question": "q", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "answer": "A"}`)

		err := CheckQuestionSchema(raw)
		require.Error(t, err)
		assert.Equal(t, contextutils.ErrorCodeValidationFailed, contextutils.GetErrorCode(err))
	})

	t.Run("wrong type", func(t *testing.T) {
		raw := json.RawMessage(`{"question": 42, "options": {}, "answer": "A", "difficulty": "easy"}`)

		assert.Error(t, CheckQuestionSchema(raw))
	})

	t.Run("not an object", func(t *testing.T) {
		assert.Error(t, CheckQuestionSchema(json.RawMessage(`"just a string"`)))
	})
}
