package usecase

import (
	"errors"

	"github.com/adityaraj161616/Nirmalaya/pkg/utils"
)

// ErrStepIncomplete means the draft does not yet satisfy the guard of
// the requested step. Handlers translate it into a redirect back to
// step 1, not an exceptional failure.
var ErrStepIncomplete = errors.New("previous steps incomplete")

// ErrNotFound means the requested record does not exist
var ErrNotFound = errors.New("not found")

// ValidationError carries one message per invalid field so the client
// can render them inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
