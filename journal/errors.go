// journal/errors.go
package journal

import (
	"errors"
	"fmt"
)

// ErrNoUser is returned when a journal opened without a user identity
// attempts a profile operation.
var ErrNoUser = errors.New("journal: no current user")

// ValidationError reports an entity that failed an invariant check. Nothing
// is written to the store when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
