package engine

import (
	"errors"
	"fmt"

	"identity-market/pkg/reasoncodes"
)

// Error carries a machine-readable reason code plus a human-readable
// reason. Every failed operation aborts with one of these and no
// partial state change.
type Error struct {
	Code   reasoncodes.ReasonCode
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func newError(code reasoncodes.ReasonCode, format string, v ...any) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, v...)}
}

// CodeOf extracts the reason code from an engine error, or returns the
// empty code for foreign errors.
func CodeOf(err error) reasoncodes.ReasonCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
