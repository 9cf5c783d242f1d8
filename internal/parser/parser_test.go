package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizservice/internal/observability"
)

func newTestParser() *Parser {
	return NewParser(observability.NewNopLogger())
}

func TestMatchOption(t *testing.T) {
	m := matchOption("A) 3/4")
	require.True(t, m.ok)
	assert.Equal(t, "A", m.key)
	assert.Equal(t, "3/4", m.value)

	m = matchOption("d)  fourth choice ")
	require.True(t, m.ok)
	assert.Equal(t, "D", m.key)
	assert.Equal(t, "fourth choice", m.value)

	assert.False(t, matchOption("E) not an option").ok)
	assert.False(t, matchOption("Answer: A").ok)
}

func TestMatchDifficulty(t *testing.T) {
	m := matchDifficulty("Difficulty: Easy")
	require.True(t, m.ok)
	assert.Equal(t, "easy", m.value)

	m = matchDifficulty("**Difficulty:** HARD")
	require.True(t, m.ok)
	assert.Equal(t, "hard", m.value)

	assert.False(t, matchDifficulty("Level: easy").ok)
}

func TestMatchAnswer(t *testing.T) {
	m := matchAnswer("Correct Answer: b")
	require.True(t, m.ok)
	assert.Equal(t, "B", m.value)

	m = matchAnswer("**Correct Answer:** C")
	require.True(t, m.ok)
	assert.Equal(t, "C", m.value)

	assert.False(t, matchAnswer("Correct Answer: E").ok)
	assert.False(t, matchAnswer("Answer: A").ok)
}

func TestParser_Parse_SingleQuestion(t *testing.T) {
	raw := "Question 1: What is 2+2?\nDifficulty: easy\nA) 3\nB) 4\nC) 5\nD) 6\nCorrect Answer: B"

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)

	assert.Equal(t, "What is 2+2?", questions[0].Question)
	assert.Equal(t, "B", questions[0].Answer)
	assert.Equal(t, "easy", questions[0].Difficulty)
	assert.Equal(t, map[string]string{"A": "3", "B": "4", "C": "5", "D": "6"}, questions[0].Options)
}

func TestParser_Parse_WellFormed(t *testing.T) {
	raw := `Here are your questions:

Question 1: What is 1/2 + 1/4?
Difficulty: easy
A) 3/4
B) 1/4
C) 2/6
D) 1/8
Correct Answer: A

Question 2: What is the area of a 3x4 rectangle?
Difficulty: medium
A) 7
B) 12
C) 14
D) 24
Correct Answer: B
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 2)

	assert.Equal(t, "What is 1/2 + 1/4?", questions[0].Question)
	assert.Equal(t, "easy", questions[0].Difficulty)
	assert.Equal(t, "A", questions[0].Answer)
	assert.Equal(t, "3/4", questions[0].Options["A"])

	assert.Equal(t, "What is the area of a 3x4 rectangle?", questions[1].Question)
	assert.Equal(t, "B", questions[1].Answer)
	assert.Equal(t, "24", questions[1].Options["D"])
}

func TestParser_Parse_NoMarker(t *testing.T) {
	raw := "The model refused to answer and produced prose instead."

	questions := newTestParser().Parse(context.Background(), raw)
	assert.Empty(t, questions)
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	assert.Empty(t, newTestParser().Parse(context.Background(), ""))
}

func TestParser_Parse_EmphasisMarkers(t *testing.T) {
	raw := `Question 1: Which fraction equals one half?
**Difficulty:** easy
A) 2/4
B) 1/3
C) 3/4
D) 1/4
**Correct Answer:** a
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)

	assert.Equal(t, "easy", questions[0].Difficulty)
	assert.Equal(t, "A", questions[0].Answer)
}

func TestParser_Parse_CaseInsensitiveMarkers(t *testing.T) {
	raw := `QUESTION 3: Pick one.
difficulty: HARD
a) one
b) two
c) three
d) four
correct answer: C
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)

	assert.Equal(t, "hard", questions[0].Difficulty)
	assert.Equal(t, "C", questions[0].Answer)
	assert.Equal(t, "one", questions[0].Options["A"])
}

func TestParser_Parse_SkipsMalformedBlocks(t *testing.T) {
	raw := `Question 1: This one is missing options.
Difficulty: easy
Correct Answer: A

Question 2: This one is complete.
Difficulty: hard
A) yes
B) no
C) maybe
D) unsure
Correct Answer: D
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)
	assert.Equal(t, "This one is complete.", questions[0].Question)
	assert.Equal(t, "D", questions[0].Answer)
}

func TestParser_Parse_DiscardsPreamble(t *testing.T) {
	raw := `Sure! A) this stray option line must not leak into the first question.

Question 1: Real question?
Difficulty: easy
A) w
B) x
C) y
D) z
Correct Answer: B
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)
	assert.Equal(t, "Real question?", questions[0].Question)
	assert.Equal(t, "w", questions[0].Options["A"])
}

func TestParser_Parse_UnnumberedMarker(t *testing.T) {
	raw := `Question: No number on this one.
Difficulty: medium
A) 1
B) 2
C) 3
D) 4
Correct Answer: C
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)
	assert.Equal(t, "No number on this one.", questions[0].Question)
}

func TestParser_Parse_IgnoresUnrecognizedLines(t *testing.T) {
	raw := `Question 1: What shape has three sides?
Some commentary the model added.
Difficulty: easy
A) triangle
B) square
C) circle
D) hexagon
Explanation: triangles have three sides.
Correct Answer: A
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)
	assert.Equal(t, "What shape has three sides?", questions[0].Question)
	assert.Len(t, questions[0].Options, 4)
}

func TestParser_Parse_LastDuplicateLineWins(t *testing.T) {
	raw := `Question 1: Duplicate markers?
Difficulty: easy
Difficulty: hard
A) 1
B) 2
C) 3
D) 4
Correct Answer: A
Correct Answer: B
`

	questions := newTestParser().Parse(context.Background(), raw)
	require.Len(t, questions, 1)
	assert.Equal(t, "hard", questions[0].Difficulty)
	assert.Equal(t, "B", questions[0].Answer)
}
