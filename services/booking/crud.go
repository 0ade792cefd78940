package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "nimtoz/database/repository/booking"
	"nimtoz/models"
)

// GetBooking returns one booking joined with its references.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.BookingView, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewBookingNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return s.assembleView(ctx, b)
}

// ListBookings returns a page of bookings with the total match count.
func (s *DefaultBookingService) ListBookings(ctx context.Context, q models.PageQuery) ([]models.BookingView, int64, error) {
	views, total, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return views, total, nil
}

// DeleteBooking removes a booking record entirely. Hard delete, no archival.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewBookingNotFoundError(id)
		}
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return nil
}
