package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindApprovedIntersecting looks for an approved booking on the product whose
// closed date interval intersects the requested one. Bounds are inclusive:
// back-to-back against an approved booking counts as a conflict.
func (r *MongoBookingRepo) FindApprovedIntersecting(ctx context.Context, productID string, start, end time.Time) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"product_id": productID,
		"status":     models.BookingStatusApproved,
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying approved bookings for product %s: %w", productID, err)
	}
	return &booking, nil
}

// FindPendingOverlapping looks for a pending booking on the product whose
// interval strictly overlaps the requested one. Bounds are open: a pending
// booking ending exactly when the request starts does not block it.
func (r *MongoBookingRepo) FindPendingOverlapping(ctx context.Context, productID string, start, end time.Time) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"product_id": productID,
		"status":     models.BookingStatusPending,
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying pending bookings for product %s: %w", productID, err)
	}
	return &booking, nil
}

// List returns a page of bookings joined with their user and product, newest
// updates first, optionally filtered by a case-insensitive search over the
// joined product title and category name.
func (r *MongoBookingRepo) List(ctx context.Context, q models.PageQuery) ([]models.BookingView, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	q = q.Normalize()

	var pipeline mongo.Pipeline
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "id",
			"as":           "user",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "product_id",
			"foreignField": "id",
			"as":           "product",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "line_items",
			"localField":   "line_item_ids",
			"foreignField": "id",
			"as":           "line_items",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "event_types",
			"localField":   "event_type_ids",
			"foreignField": "id",
			"as":           "event_types",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$product", "preserveNullAndEmptyArrays": true}}},
	)

	if q.Search != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"product.title": bson.M{"$regex": q.Search, "$options": "i"}},
				bson.M{"line_items.kind": bson.M{"$regex": q.Search, "$options": "i"}},
			},
		}}})
	}

	countPipeline := append(append(mongo.Pipeline{}, pipeline...), bson.D{{Key: "$count", Value: "total"}})

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: q.Skip()}},
		bson.D{{Key: "$limit", Value: int64(q.Limit)}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var views []models.BookingView
	for cursor.Next(ctx) {
		var view models.BookingView
		if err := cursor.Decode(&view); err != nil {
			return nil, 0, fmt.Errorf("error decoding booking: %w", err)
		}
		view.IsApproved = view.Booking.IsApproved()
		view.IsRejected = view.Booking.IsRejected()
		views = append(views, view)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error listing bookings: %w", err)
	}

	total, err := r.aggregateCount(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *MongoBookingRepo) aggregateCount(ctx context.Context, pipeline mongo.Pipeline) (int64, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("error decoding booking count: %w", err)
		}
	}
	return result.Total, nil
}

// MonthlyStatusCounts groups bookings whose start date falls inside
// [windowStart, windowEnd) by calendar month and lifecycle status.
func (r *MongoBookingRepo) MonthlyStatusCounts(ctx context.Context, windowStart, windowEnd time.Time) ([]StatusCount, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"start_date": bson.M{"$gte": windowStart, "$lt": windowEnd},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":   bson.M{"$year": "$start_date"},
				"month":  bson.M{"$month": "$start_date"},
				"status": "$status",
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"year":   "$_id.year",
			"month":  "$_id.month",
			"status": "$_id.status",
			"count":  1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []StatusCount
	for cursor.Next(ctx) {
		var sc StatusCount
		if err := cursor.Decode(&sc); err != nil {
			return nil, fmt.Errorf("error decoding booking stat bucket: %w", err)
		}
		counts = append(counts, sc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error aggregating booking stats: %w", err)
	}
	return counts, nil
}
