package services

import "fmt"

// questionPromptTemplate instructs the model to answer in the exact layout
// the parser understands: "Question N:", "Difficulty:", "A)".."D)" and
// "Correct Answer:".
const questionPromptTemplate = `
Generate %d %s multiple-choice questions on the topic "%s".
Each question must have exactly 4 options (A, B, C, D), and indicate the correct answer.
For each question, also include its difficulty level.
Provide only the questions in the specified format below, numbered from 1 to %d, without any introductory or concluding remarks.

Format:
Question 1: ...
Difficulty: %s
A) ...
B) ...
C) ...
D) ...
Correct Answer: ...

Question 2: ...
Difficulty: %s
A) ...
B) ...
C) ...
D) ...
Correct Answer: ...

... (up to Question %d)
`

// BuildQuestionPrompt renders the generation prompt for a topic, difficulty
// and question count.
func BuildQuestionPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(questionPromptTemplate, count, difficulty, topic, count, difficulty, difficulty, count)
}
