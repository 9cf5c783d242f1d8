package contextutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidOption checks whether a user-supplied option letter is one of A-D
// (case-insensitive) using go-playground/validator
func IsValidOption(option string) bool {
	return validate.Var(option, "oneof=A B C D a b c d") == nil
}
