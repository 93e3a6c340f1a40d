package availability

import (
	"errors"
	"fmt"
)

// Error is a typed engine error. The calling layer maps codes to
// user-facing messages; all of them are recoverable by retrying with
// different input.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	// CodeInvalidSlot: requested time does not correspond to a generated
	// slot (outside working hours, wrong alignment, non-working day).
	CodeInvalidSlot = "invalidSlot"
	// CodeConflict: valid slot but already occupied by an active booking.
	CodeConflict = "conflict"
	// CodeInvalidTransition: status change requested on a terminal booking.
	CodeInvalidTransition = "invalidTransition"
	// CodeConfiguration: malformed or missing availability config where no
	// safe default applies.
	CodeConfiguration = "configError"
)

func NewInvalidSlotError(format string, args ...any) error {
	return &Error{Code: CodeInvalidSlot, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidTransitionError(format string, args ...any) error {
	return &Error{Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func NewConfigurationError(format string, args ...any) error {
	return &Error{Code: CodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsInvalidSlot(err error) bool       { return hasCode(err, CodeInvalidSlot) }
func IsConflict(err error) bool          { return hasCode(err, CodeConflict) }
func IsInvalidTransition(err error) bool { return hasCode(err, CodeInvalidTransition) }
func IsConfiguration(err error) bool     { return hasCode(err, CodeConfiguration) }
