// file: internals/helpers/errors.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// DomainError carries the error taxonomy of the counseling core. Controllers
// never build these responses by hand: services return a *DomainError and the
// controller hands it to JsonDomainError.
type DomainError struct {
	Code    string
	Status  int
	Message string
}

func (e *DomainError) Error() string { return e.Message }

var (
	ErrPastDate = &DomainError{
		Code: "PAST_DATE", Status: fiber.StatusUnprocessableEntity,
		Message: "Appointment date cannot be in the past",
	}
	ErrOutOfHours = &DomainError{
		Code: "OUT_OF_HOURS", Status: fiber.StatusUnprocessableEntity,
		Message: "Appointment time must be within office hours (08:00 - 17:00)",
	}
	ErrDoubleBooking = &DomainError{
		Code: "DOUBLE_BOOKED", Status: fiber.StatusConflict,
		Message: "The counselor already has an appointment at that date and time",
	}
	ErrInvalidTransition = &DomainError{
		Code: "INVALID_TRANSITION", Status: fiber.StatusConflict,
		Message: "The requested status change is not allowed from the current state",
	}
	ErrConflict = &DomainError{
		Code: "CONFLICT", Status: fiber.StatusConflict,
		Message: "The record was modified by another request, please retry",
	}
	ErrValidation = &DomainError{
		Code: "VALIDATION", Status: fiber.StatusUnprocessableEntity,
		Message: "The submitted data is invalid",
	}
	ErrNotFound = &DomainError{
		Code: "NOT_FOUND", Status: fiber.StatusNotFound,
		Message: "Record not found",
	}
	ErrPermission = &DomainError{
		Code: "FORBIDDEN", Status: fiber.StatusForbidden,
		Message: "You are not allowed to perform this action",
	}
)

// JsonDomainError turns an error coming out of a service/transaction into the
// standard JSON envelope. *DomainError and *fiber.Error keep their status;
// anything else falls back to 500 with the original message.
func JsonDomainError(c *fiber.Ctx, err error) error {
	var de *DomainError
	if errors.As(err, &de) {
		return JsonErrorWithCode(c, de.Status, de.Code, de.Message)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
