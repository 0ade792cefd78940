package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusApproved))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusRejected))

	assert.False(t, BookingStatusApproved.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusApproved.CanTransitionTo(BookingStatusRejected))
	assert.False(t, BookingStatusRejected.CanTransitionTo(BookingStatusApproved))
	assert.False(t, BookingStatusRejected.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusPending))
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.True(t, BookingStatusApproved.Valid())
	assert.True(t, BookingStatusRejected.Valid())
	assert.False(t, BookingStatus("cancelled").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestNewBookingViewDerivesLegacyFlags(t *testing.T) {
	approved := NewBookingView(Booking{ID: "b1", Status: BookingStatusApproved})
	assert.True(t, approved.IsApproved)
	assert.False(t, approved.IsRejected)

	pending := NewBookingView(Booking{ID: "b2", Status: BookingStatusPending})
	assert.False(t, pending.IsApproved)
	assert.False(t, pending.IsRejected)

	rejected := NewBookingView(Booking{ID: "b3", Status: BookingStatusRejected})
	assert.False(t, rejected.IsApproved)
	assert.True(t, rejected.IsRejected)
}

func TestCreateBookingRequestValidateCollectsAllFields(t *testing.T) {
	req := CreateBookingRequest{
		StartDate: "2024-06-05",
		EndDate:   "2024-06-01",
		StartTime: "25:99",
		Hall:      []IDRef{{ID: ""}},
	}

	errs := req.Validate()

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "end_date")
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "userId")
	assert.Contains(t, fields, "productId")
	assert.Contains(t, fields, "Hall[0].id")
}
