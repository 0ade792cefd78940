package models

import "time"

// BookingStatus is the lifecycle state of a booking. Exactly one state holds
// at any time; approval and rejection are both terminal.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Valid reports whether s is one of the known lifecycle states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusApproved || s == BookingStatusRejected
}

// CanTransitionTo reports whether a booking in state s may move to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == BookingStatusPending && next.Terminal()
}

// Booking represents a user's request to reserve a product for a date range.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	ProductID string    `bson:"product_id" json:"productId"`
	UserID    string    `bson:"user_id" json:"userId"`
	StartDate time.Time `bson:"start_date" json:"start_date"` // normalized to UTC midnight
	EndDate   time.Time `bson:"end_date" json:"end_date"`     // normalized to UTC midnight
	// Full timestamps when a time of day was supplied; nil means date-only.
	StartTime    *time.Time    `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime      *time.Time    `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Status       BookingStatus `bson:"status" json:"status"`
	LineItemIDs  []string      `bson:"line_item_ids" json:"-"`
	EventTypeIDs []string      `bson:"event_type_ids" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

// IsApproved mirrors the legacy wire field of the same name.
func (b *Booking) IsApproved() bool { return b.Status == BookingStatusApproved }

// IsRejected mirrors the legacy wire field of the same name.
func (b *Booking) IsRejected() bool { return b.Status == BookingStatusRejected }
