package orderflow

import (
	"errors"
	"strings"
)

// ValidationError is a field-level problem. It blocks progression to the
// next step but is never fatal to the flow.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// ErrOrNil collapses an empty list to nil so callers can return it directly.
func (e ValidationErrors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// IsValidation reports whether err is a validation failure as opposed to a
// collaborator/network error.
func IsValidation(err error) bool {
	var single ValidationError
	var many ValidationErrors
	return errors.As(err, &single) || errors.As(err, &many)
}
