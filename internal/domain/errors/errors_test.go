package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	if ErrEmailExists == nil {
		t.Error("ErrEmailExists should not be nil")
	}
	if ErrValidation == nil {
		t.Error("ErrValidation should not be nil")
	}
	if ErrInvalidCredentials == nil {
		t.Error("ErrInvalidCredentials should not be nil")
	}
	if ErrUserNotFound == nil {
		t.Error("ErrUserNotFound should not be nil")
	}
}

func TestForbiddenFieldsError(t *testing.T) {
	err := &ForbiddenFieldsError{Fields: []string{"email", "id"}}
	want := "attempt to update forbidden field(s): email, id"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
