package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("not found")

// CredentialsSignin is the AuthError type raised when the submitted
// credentials do not match a known user.
const CredentialsSignin = "CredentialsSignin"

// AuthError is the classified error family raised by credential sign-in.
// Errors outside this family are control-flow signals for the caller and must
// be propagated unchanged.
type AuthError struct {
	Type string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error (%s): %v", e.Type, e.Err)
	}
	return fmt.Sprintf("auth error (%s)", e.Type)
}

func (e *AuthError) Unwrap() error { return e.Err }
