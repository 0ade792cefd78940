package booking

import (
	"fmt"
	"time"

	"nimtoz/models"
)

// Machine-readable error codes surfaced to API clients alongside the
// human-readable message.
const (
	CodeProductNotFound  = "productNotFound"
	CodeBookingNotFound  = "bookingNotFound"
	CodeApprovedConflict = "approvedConflict"
	CodePendingOverlap   = "pendingOverlap"
	CodeStateConflict    = "stateConflict"
)

// DomainError is a booking-domain failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewProductNotFoundError reports that the booked product (or its category)
// does not exist.
func NewProductNotFoundError() error {
	return &DomainError{
		Code:    CodeProductNotFound,
		Message: "Product or category not found",
	}
}

// NewBookingNotFoundError reports a missing booking by id.
func NewBookingNotFoundError(id string) error {
	return &DomainError{
		Code:    CodeBookingNotFound,
		Message: fmt.Sprintf("Booking with ID %s does not exist", id),
	}
}

// NewApprovedConflictError reports a hard block by an approved booking.
func NewApprovedConflictError() error {
	return &DomainError{
		Code:    CodeApprovedConflict,
		Message: "Booking not allowed: An approved event exists on this date.",
	}
}

// NewPendingOverlapError reports a soft block by an existing pending request,
// quoting the existing request's date range.
func NewPendingOverlapError(start, end time.Time) error {
	return &DomainError{
		Code:    CodePendingOverlap,
		Message: fmt.Sprintf("Booking already exists from %s to %s", formatDate(start), formatDate(end)),
	}
}

// NewStateConflictError reports an approve/reject attempt against a booking
// that already left the pending state.
func NewStateConflictError(status models.BookingStatus) error {
	return &DomainError{
		Code:    CodeStateConflict,
		Message: fmt.Sprintf("Booking is already %s", status),
	}
}

// ValidationError carries the full per-field failure list for one request.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
