// Package parser extracts quiz questions from loosely formatted
// generative-AI text output.
package parser

import (
	"context"
	"regexp"
	"strings"

	"quizservice/internal/models"
	"quizservice/internal/observability"
)

var (
	questionMarkerRegex = regexp.MustCompile(`(?i)Question\s*\d*:`)
	questionSplitRegex  = regexp.MustCompile(`(?i)Question\s*\d*:\s*`)
	optionRegex         = regexp.MustCompile(`(?i)^\s*[A-D]\)\s*(.*)`)
	difficultyRegex     = regexp.MustCompile(`(?i)^\s*\**Difficulty:\s*\**\s*(.*)`)
	answerRegex         = regexp.MustCompile(`(?i)^\s*\**Correct Answer:\s*\**\s*([A-D])`)
)

// lineMatch is the result of testing one line against one pattern.
type lineMatch struct {
	ok    bool
	key   string
	value string
}

// matchOption recognizes "A) text" lines (any case). key is the option letter
// upper-cased, value the option text.
func matchOption(line string) lineMatch {
	m := optionRegex.FindStringSubmatch(line)
	if m == nil {
		return lineMatch{}
	}
	return lineMatch{
		ok:    true,
		key:   strings.ToUpper(line[:1]),
		value: strings.TrimSpace(m[1]),
	}
}

// matchDifficulty recognizes "Difficulty: level" lines, tolerating emphasis
// markers around the label. value is lower-cased.
func matchDifficulty(line string) lineMatch {
	m := difficultyRegex.FindStringSubmatch(line)
	if m == nil {
		return lineMatch{}
	}
	return lineMatch{ok: true, value: strings.ToLower(strings.TrimSpace(m[1]))}
}

// matchAnswer recognizes "Correct Answer: X" lines, tolerating emphasis
// markers around the label. value is the option letter upper-cased.
func matchAnswer(line string) lineMatch {
	m := answerRegex.FindStringSubmatch(line)
	if m == nil {
		return lineMatch{}
	}
	return lineMatch{ok: true, value: strings.ToUpper(strings.TrimSpace(m[1]))}
}

// Parser turns raw model output into validated questions. Blocks that fail
// validation are logged and skipped, never surfaced as errors.
type Parser struct {
	logger *observability.Logger
}

// NewParser creates a new Parser.
func NewParser(logger *observability.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse extracts every well-formed question from raw text, preserving the
// order in which blocks appear. Text before the first question marker is
// discarded; if no marker is present the result is empty.
func (p *Parser) Parse(ctx context.Context, rawText string) []models.Question {
	ctx, span := observability.TraceParserFunction(ctx, "Parse")
	defer span.End()

	loc := questionMarkerRegex.FindStringIndex(rawText)
	if loc == nil {
		return []models.Question{}
	}
	rawText = rawText[loc[0]:]

	questions := []models.Question{}
	for _, block := range questionSplitRegex.Split(rawText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		candidate := parseBlock(block)
		question, err := candidate.Validate()
		if err != nil {
			p.logger.Warn(ctx, "Skipping question due to parsing/validation error", map[string]interface{}{
				"error":     err.Error(),
				"raw_block": truncate(block, 100),
			})
			continue
		}
		questions = append(questions, *question)
	}

	return questions
}

// parseBlock reads a single question block. The first non-blank line is the
// question text; each later line is run through the matchers in order and
// unrecognized lines are ignored. When a matcher fires more than once the
// last occurrence wins.
func parseBlock(block string) models.CandidateQuestion {
	candidate := models.CandidateQuestion{Options: map[string]string{}}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if candidate.Question == "" {
			candidate.Question = line
			continue
		}

		if m := matchOption(line); m.ok {
			candidate.Options[m.key] = m.value
		} else if m := matchDifficulty(line); m.ok {
			candidate.Difficulty = m.value
		} else if m := matchAnswer(line); m.ok {
			candidate.Answer = m.value
		}
	}

	return candidate
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
