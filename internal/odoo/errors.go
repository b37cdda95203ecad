package odoo

import (
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// AuthError indicates the record-store session could not be established.
// Fatal to the whole request; surfaced to the operator.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("record store authentication failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("record store authentication failed: %s", e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// IsFault reports whether an error is a server-side fault, typically a
// permission or schema gap. Callers reading optional fields degrade on
// faults instead of failing the request.
func IsFault(err error) bool {
	var fault xmlrpc.FaultError
	return errors.As(err, &fault)
}
