package workprogress

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no progress record exists for a lookup, after
// the fallback list scan has also come up empty.
var ErrNotFound = errors.New("work progress record not found")

// ActionError reports an action attempted from a state that does not permit
// it. The record is left unchanged.
type ActionError struct {
	Code    string
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewActionError(msg string) error {
	return &ActionError{
		Code:    "actionNotPermitted",
		Message: msg,
	}
}

// IsActionError reports whether err is a gating rejection.
func IsActionError(err error) bool {
	var ae *ActionError
	return errors.As(err, &ae)
}
