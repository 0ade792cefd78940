package notification

import "context"

// LineItemSummary is one booked offering rendered into an email.
type LineItemSummary struct {
	Kind  string  `json:"kind"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingRequestedPayload is emitted when a customer submits a booking and
// lands in the operations inbox.
type BookingRequestedPayload struct {
	BookingID    string            `json:"booking_id"`
	ProductTitle string            `json:"product_title"`
	UserName     string            `json:"user_name"`
	UserEmail    string            `json:"user_email"`
	UserPhone    string            `json:"user_phone"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	LineItems    []LineItemSummary `json:"line_items"`
	EventTypes   []string          `json:"event_types"`
}

// BookingDecidedPayload is emitted when an admin approves or rejects a
// booking and goes to the customer.
type BookingDecidedPayload struct {
	BookingID    string            `json:"booking_id"`
	Approved     bool              `json:"approved"`
	ProductTitle string            `json:"product_title"`
	UserName     string            `json:"user_name"`
	UserEmail    string            `json:"user_email"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	LineItems    []LineItemSummary `json:"line_items"`
}

// PasswordResetPayload carries a single-use reset token to the user.
type PasswordResetPayload struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Token     string `json:"token"`
}

// Notifier delivers booking lifecycle notifications. Implementations must be
// safe for concurrent use.
type Notifier interface {
	SendBookingRequested(ctx context.Context, p BookingRequestedPayload) error
	SendBookingDecided(ctx context.Context, p BookingDecidedPayload) error
	SendPasswordReset(ctx context.Context, p PasswordResetPayload) error
}

// Producer enqueues notifications for asynchronous, retryable delivery.
// Enqueue failures are reported but must never abort the triggering write.
type Producer interface {
	EnqueueBookingRequested(ctx context.Context, p BookingRequestedPayload) error
	EnqueueBookingDecided(ctx context.Context, p BookingDecidedPayload) error
	EnqueuePasswordReset(ctx context.Context, p PasswordResetPayload) error
}
