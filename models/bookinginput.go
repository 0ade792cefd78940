package models

import (
	"fmt"
	"time"
)

// IDRef is the wire shape the frontend uses for referenced records.
type IDRef struct {
	ID string `json:"id"`
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CreateBookingRequest is the request body for POST /booking. Field names
// mirror the legacy wire contract.
type CreateBookingRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	StartTime string  `json:"start_time,omitempty"`
	EndTime   string  `json:"end_time,omitempty"`
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Hall      []IDRef `json:"Hall"`
	Events    []IDRef `json:"events"`
}

const dateLayout = "2006-01-02"

// Validate checks the request field by field, collecting every failure so the
// client gets the full list in one round trip.
func (r CreateBookingRequest) Validate() []FieldError {
	var errs []FieldError

	start := parseDateField("start_date", r.StartDate, &errs)
	end := parseDateField("end_date", r.EndDate, &errs)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, FieldError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if r.StartTime != "" {
		if _, err := time.Parse("15:04", r.StartTime); err != nil {
			errs = append(errs, FieldError{Field: "start_time", Message: "start_time must be in HH:MM format"})
		}
	}
	if r.EndTime != "" {
		if _, err := time.Parse("15:04", r.EndTime); err != nil {
			errs = append(errs, FieldError{Field: "end_time", Message: "end_time must be in HH:MM format"})
		}
	}
	if r.UserID == "" {
		errs = append(errs, FieldError{Field: "userId", Message: "userId is required"})
	}
	if r.ProductID == "" {
		errs = append(errs, FieldError{Field: "productId", Message: "productId is required"})
	}
	for i, ref := range r.Hall {
		if ref.ID == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("Hall[%d].id", i), Message: "line item id is required"})
		}
	}
	for i, ref := range r.Events {
		if ref.ID == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("events[%d].id", i), Message: "event type id is required"})
		}
	}
	return errs
}

func parseDateField(field, value string, errs *[]FieldError) time.Time {
	if value == "" {
		*errs = append(*errs, FieldError{Field: field, Message: field + " is required"})
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		*errs = append(*errs, FieldError{Field: field, Message: field + " must be a YYYY-MM-DD date"})
		return time.Time{}
	}
	return t
}

// ParsedDates returns the normalized date bounds. Call only after Validate
// returned no errors.
func (r CreateBookingRequest) ParsedDates() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, r.StartDate)
	end, _ = time.Parse(dateLayout, r.EndDate)
	return start.UTC(), end.UTC()
}

// UpdateBookingRequest is the request body for PUT /booking/:id. A true value
// approves the booking; false rejects it.
type UpdateBookingRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}
