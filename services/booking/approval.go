package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "nimtoz/database/repository/booking"
	"nimtoz/models"
	"nimtoz/services/notification"
	"nimtoz/utils"

	"go.uber.org/zap"
)

// ApproveBooking flips a pending booking to approved. The repository runs the
// conflict re-check and the status write inside one transaction, so two
// concurrent approvals of overlapping requests cannot both succeed. Approving
// a booking that already left the pending state is a state conflict, not a
// silent re-approval. No other booking is mutated; overlapping pending
// requests stay pending for the administrator to resolve.
func (s *DefaultBookingService) ApproveBooking(ctx context.Context, id string) (*models.BookingView, error) {
	b, err := s.Repo.Approve(ctx, id)
	if err != nil {
		return nil, s.mapTransitionError(ctx, id, err)
	}
	return s.finishDecision(ctx, b, true)
}

// RejectBooking flips a pending booking to rejected. Rejection frees the
// interval; the booking record itself is kept.
func (s *DefaultBookingService) RejectBooking(ctx context.Context, id string) (*models.BookingView, error) {
	b, err := s.Repo.Reject(ctx, id)
	if err != nil {
		return nil, s.mapTransitionError(ctx, id, err)
	}
	return s.finishDecision(ctx, b, false)
}

func (s *DefaultBookingService) mapTransitionError(ctx context.Context, id string, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		return NewBookingNotFoundError(id)
	case errors.Is(err, bookingRepo.ErrApprovedConflict):
		return NewApprovedConflictError()
	case errors.Is(err, bookingRepo.ErrNotPending):
		status := models.BookingStatus("")
		if b, getErr := s.Repo.GetByID(ctx, id); getErr == nil {
			status = b.Status
		}
		return NewStateConflictError(status)
	default:
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
}

// finishDecision assembles the decided booking's view and enqueues the
// customer notification. Notification failure is logged only; the state
// change is already committed.
func (s *DefaultBookingService) finishDecision(ctx context.Context, b *models.Booking, approved bool) (*models.BookingView, error) {
	logger := utils.GetLogger()

	view, err := s.assembleView(ctx, b)
	if err != nil {
		return nil, err
	}

	payload := notification.BookingDecidedPayload{
		BookingID: b.ID,
		Approved:  approved,
		StartDate: formatDate(b.StartDate),
		EndDate:   formatDate(b.EndDate),
		LineItems: itemSummaries(view.LineItems),
	}
	if view.Product != nil {
		payload.ProductTitle = view.Product.Title
	}
	if view.User != nil {
		payload.UserName = view.User.FirstName + " " + view.User.LastName
		payload.UserEmail = view.User.Email
	}
	if err := s.Notifier.EnqueueBookingDecided(ctx, payload); err != nil {
		logger.Error("Failed to enqueue booking decision notification",
			zap.String("bookingID", b.ID),
			zap.Bool("approved", approved),
			zap.Error(err))
	}
	return view, nil
}

// assembleView joins a booking with its user, product, line items and event
// types. Missing references are tolerated and left nil so a decided booking
// still renders after a referenced record was removed.
func (s *DefaultBookingService) assembleView(ctx context.Context, b *models.Booking) (*models.BookingView, error) {
	logger := utils.GetLogger()
	view := models.NewBookingView(*b)

	if user, err := s.Users.GetByID(ctx, b.UserID); err == nil {
		view.User = user
	} else {
		logger.Warn("Booking references missing user",
			zap.String("bookingID", b.ID), zap.String("userID", b.UserID))
	}
	if product, err := s.Products.GetByID(ctx, b.ProductID); err == nil {
		view.Product = product
	} else {
		logger.Warn("Booking references missing product",
			zap.String("bookingID", b.ID), zap.String("productID", b.ProductID))
	}

	items, err := s.Catalog.GetLineItemsByIDs(ctx, b.LineItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items for booking %s: %w", b.ID, err)
	}
	view.LineItems = items

	eventTypes, err := s.Catalog.GetEventTypesByIDs(ctx, b.EventTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load event types for booking %s: %w", b.ID, err)
	}
	view.EventTypes = eventTypes
	return &view, nil
}
