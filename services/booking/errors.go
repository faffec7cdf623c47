package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the booking service.
const (
	CodeInvalidInput    = "invalidInput"
	CodeNotFound        = "notFound"
	CodeNoAvailability  = "noAvailability"
	CodeSlotUnavailable = "slotUnavailable"
	CodeClaimConflict   = "concurrentClaimConflict"
	CodeInvalidState    = "invalidState"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInputError(msg string) error {
	return &BookingError{Code: CodeInvalidInput, Message: msg}
}

func NewNotFoundError(what, id string) error {
	return &BookingError{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", what, id)}
}

func NewNoAvailabilityError(date string) error {
	return &BookingError{Code: CodeNoAvailability, Message: fmt.Sprintf("no availability found for %s", date)}
}

func NewSlotUnavailableError(start string, durationMinutes int) error {
	return &BookingError{
		Code:    CodeSlotUnavailable,
		Message: fmt.Sprintf("no consecutive slots available for %d minutes starting at %s", durationMinutes, start),
	}
}

func NewClaimConflictError(start string) error {
	return &BookingError{
		Code:    CodeClaimConflict,
		Message: fmt.Sprintf("slots starting at %s were claimed by a concurrent booking", start),
	}
}

func NewInvalidStateError(from, to string) error {
	return &BookingError{
		Code:    CodeInvalidState,
		Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to),
	}
}

// HasCode reports whether err is a BookingError with the given code.
func HasCode(err error, code string) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == code
}
