package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Approve flips a pending booking to approved. The conflict re-check and the
// status write run in one transaction so two concurrent approvals of
// overlapping pending bookings cannot both succeed.
func (r *MongoBookingRepo) Approve(ctx context.Context, id string) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var approved *models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		var booking models.Booking
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&booking); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("fetch booking failed: %w", err)
		}
		if booking.Status != models.BookingStatusPending {
			return ErrNotPending
		}

		// Another approved booking intersecting this interval blocks approval.
		conflictFilter := bson.M{
			"id":         bson.M{"$ne": id},
			"product_id": booking.ProductID,
			"status":     models.BookingStatusApproved,
			"start_date": bson.M{"$lte": booking.EndDate},
			"end_date":   bson.M{"$gte": booking.StartDate},
		}
		if err := r.coll.FindOne(sc, conflictFilter).Err(); err != mongo.ErrNoDocuments {
			if err == nil {
				return ErrApprovedConflict
			}
			return fmt.Errorf("approved conflict check failed: %w", err)
		}

		update := bson.M{"$set": bson.M{
			"status":     models.BookingStatusApproved,
			"updated_at": time.Now(),
		}}
		// Status guard in the filter keeps the flip idempotent-safe even if
		// the document changed between the read and the write.
		res, err := r.coll.UpdateOne(sc, bson.M{"id": id, "status": models.BookingStatusPending}, update)
		if err != nil {
			return fmt.Errorf("approve update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotPending
		}

		booking.Status = models.BookingStatusApproved
		approved = &booking
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		switch err {
		case ErrNotFound, ErrNotPending, ErrApprovedConflict:
			return nil, err
		}
		return nil, fmt.Errorf("approve transaction failed: %w", err)
	}

	return approved, nil
}

// Reject flips a pending booking to rejected. No conflict check is needed;
// the status guard alone enforces the state machine.
func (r *MongoBookingRepo) Reject(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.BookingStatusRejected,
		"updated_at": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "status": models.BookingStatusPending}, update)
	if err != nil {
		return nil, fmt.Errorf("reject update failed: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing booking from one already decided.
		if err := r.coll.FindOne(ctx, bson.M{"id": id}).Err(); err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, ErrNotPending
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("fetch rejected booking failed: %w", err)
	}
	return &booking, nil
}
