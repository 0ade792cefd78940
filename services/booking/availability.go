package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	productRepo "nimtoz/database/repository/product"
)

// CheckAvailability decides whether a booking for productID over the closed
// date interval [start, end] may be admitted. It returns nil when admissible,
// or a DomainError naming the block. The caller guarantees start <= end.
//
// Approved bookings act as a hard lock and are checked first with inclusive
// bounds: a request merely touching an approved interval's endpoint is
// blocked. Pending requests may legitimately coexist while overlapping, since
// only one of them will be approved, so they block with strict bounds only —
// back-to-back pending requests are allowed.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, productID string, start, end time.Time) error {
	_, category, err := s.Products.GetWithCategory(ctx, productID)
	if err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return NewProductNotFoundError()
		}
		return fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}
	if category == nil {
		return NewProductNotFoundError()
	}
	return s.checkConflicts(ctx, productID, start, end)
}

// checkConflicts runs the two-phase conflict scan, assuming the product has
// already been resolved.
func (s *DefaultBookingService) checkConflicts(ctx context.Context, productID string, start, end time.Time) error {
	approved, err := s.Repo.FindApprovedIntersecting(ctx, productID, start, end)
	if err != nil {
		return fmt.Errorf("failed to check approved bookings for product %s: %w", productID, err)
	}
	if approved != nil {
		return NewApprovedConflictError()
	}

	pending, err := s.Repo.FindPendingOverlapping(ctx, productID, start, end)
	if err != nil {
		return fmt.Errorf("failed to check pending bookings for product %s: %w", productID, err)
	}
	if pending != nil {
		return NewPendingOverlapError(pending.StartDate, pending.EndDate)
	}
	return nil
}
