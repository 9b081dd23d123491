package parsing

import (
	"errors"
	"fmt"
)

// ErrMissingTargetRole is returned when a caller invokes gap analysis or
// course generation without a target role. This is a caller contract
// violation, not a degradable condition.
var ErrMissingTargetRole = &InvalidInputError{Field: "targetRole", Message: "target role is required"}

// InvalidInputError represents a blank or missing required argument.
// It is the only error class the pipeline lets propagate as a hard failure;
// everything downstream of input validation degrades instead of throwing.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}
