package models

import (
	"encoding/json"

	contextutils "quizservice/internal/utils"

	"github.com/xeipuuv/gojsonschema"
)

// questionSchema is the JSON schema every record loaded from the store file
// must satisfy before field validation runs. It guards shape (types, required
// fields); Validate guards content.
const questionSchema = `{
	"type": "object",
	"required": ["question", "options", "answer", "difficulty"],
	"properties": {
		"question": {"type": "string"},
		"options": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"answer": {"type": "string"},
		"difficulty": {"type": "string"}
	}
}`

var questionSchemaLoader = gojsonschema.NewStringLoader(questionSchema)

// CheckQuestionSchema validates a raw JSON record against the question schema.
// It returns a ValidationFailed error describing the first violation.
func CheckQuestionSchema(raw json.RawMessage) error {
	result, err := gojsonschema.Validate(questionSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return contextutils.NewAppErrorWithCause(
			contextutils.ErrorCodeInternalError,
			contextutils.SeverityError,
			"Failed to run question schema validation",
			"",
			err,
		)
	}

	if !result.Valid() {
		details := ""
		if errs := result.Errors(); len(errs) > 0 {
			details = errs[0].String()
		}
		return contextutils.NewAppError(
			contextutils.ErrorCodeValidationFailed,
			contextutils.SeverityWarn,
			"Question record does not match schema",
			details,
		)
	}

	return nil
}
