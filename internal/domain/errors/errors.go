package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrValidation         = errors.New("missing or empty required field")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotificationFailed = errors.New("verification notification failed")
)

// ForbiddenFieldsError reports update keys outside the allowed set.
type ForbiddenFieldsError struct {
	Fields []string
}

func (e *ForbiddenFieldsError) Error() string {
	return fmt.Sprintf("attempt to update forbidden field(s): %s", strings.Join(e.Fields, ", "))
}
