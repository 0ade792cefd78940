package bookingRepo

import (
	"context"
	"errors"
	"time"

	"nimtoz/models"
)

// Sentinel errors surfaced by the approval transaction so the service layer
// can map them to distinct API failures.
var (
	// ErrApprovedConflict means an already-approved booking intersects the
	// interval being approved.
	ErrApprovedConflict = errors.New("approved booking conflicts with requested interval")
	// ErrNotPending means the booking is not in the pending state, so the
	// requested transition is not allowed.
	ErrNotPending = errors.New("booking is not pending")
	// ErrNotFound means no booking matched the given identifier.
	ErrNotFound = errors.New("booking not found")
)

// StatusCount is one aggregation bucket of bookings grouped by calendar month
// and lifecycle status.
type StatusCount struct {
	Year   int                  `bson:"year"`
	Month  time.Month           `bson:"month"`
	Status models.BookingStatus `bson:"status"`
	Count  int                  `bson:"count"`
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q models.PageQuery) ([]models.BookingView, int64, error)
	Count(ctx context.Context) (int64, error)

	// FindApprovedIntersecting returns an approved booking on the product
	// whose closed interval intersects [start, end] (inclusive bounds), or
	// nil when none exists.
	FindApprovedIntersecting(ctx context.Context, productID string, start, end time.Time) (*models.Booking, error)
	// FindPendingOverlapping returns a pending booking on the product whose
	// interval strictly overlaps (start, end) (open bounds), or nil when
	// none exists.
	FindPendingOverlapping(ctx context.Context, productID string, start, end time.Time) (*models.Booking, error)

	// Approve flips a pending booking to approved inside a transaction that
	// re-checks the approved-conflict invariant. Returns ErrApprovedConflict,
	// ErrNotPending or ErrNotFound on the corresponding failures.
	Approve(ctx context.Context, id string) (*models.Booking, error)
	// Reject flips a pending booking to rejected. Returns ErrNotPending or
	// ErrNotFound on the corresponding failures.
	Reject(ctx context.Context, id string) (*models.Booking, error)

	// MonthlyStatusCounts groups bookings starting within [windowStart,
	// windowEnd) by calendar month and status.
	MonthlyStatusCounts(ctx context.Context, windowStart, windowEnd time.Time) ([]StatusCount, error)
}
