package userRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns a page of users, newest first, optionally filtered by a
// case-insensitive search over name and email.
func (r *MongoUserRepo) List(ctx context.Context, q models.PageQuery) ([]models.User, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	q = q.Normalize()

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"firstname": bson.M{"$regex": q.Search, "$options": "i"}},
			bson.M{"lastname": bson.M{"$regex": q.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": q.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, 0, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error listing users: %w", err)
	}
	return users, total, nil
}

// TopBookers ranks users by booking count using a $lookup into the bookings
// collection.
func (r *MongoUserRepo) TopBookers(ctx context.Context, limit int) ([]models.TopBooker, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if limit < 1 {
		limit = 5
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "bookings",
			"localField":   "id",
			"foreignField": "user_id",
			"as":           "user_bookings",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"booking_count": bson.M{"$size": "$user_bookings"},
		}}},
		bson.D{{Key: "$match", Value: bson.M{"booking_count": bson.M{"$gt": 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "booking_count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		bson.D{{Key: "$project", Value: bson.M{"user_bookings": 0, "password": 0}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top bookers: %w", err)
	}
	defer cursor.Close(ctx)

	var bookers []models.TopBooker
	for cursor.Next(ctx) {
		var tb models.TopBooker
		if err := cursor.Decode(&tb); err != nil {
			return nil, fmt.Errorf("failed to decode top booker: %w", err)
		}
		bookers = append(bookers, tb)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error ranking top bookers: %w", err)
	}
	return bookers, nil
}
