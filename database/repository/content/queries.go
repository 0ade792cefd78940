package contentRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func listPage(ctx context.Context, coll *mongo.Collection, filter bson.M, q models.PageQuery, out interface{}, what string) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", what, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return 0, fmt.Errorf("error decoding %s: %w", what, err)
	}
	return total, nil
}

func searchFilter(search string, fields ...string) bson.M {
	if search == "" {
		return bson.M{}
	}
	clauses := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, bson.M{f: bson.M{"$regex": search, "$options": "i"}})
	}
	return bson.M{"$or": clauses}
}

func (r *MongoContentRepo) ListBlogs(ctx context.Context, q models.PageQuery) ([]models.Blog, int64, error) {
	q = q.Normalize()
	filter := searchFilter(q.Search, "title", "description")

	var blogs []models.Blog
	total, err := listPage(ctx, r.blogColl, filter, q, &blogs, "blogs")
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *MongoContentRepo) LatestApprovedBlogs(ctx context.Context, limit int) ([]models.Blog, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 3
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.blogColl.Find(ctx, bson.M{"is_approved": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("error decoding latest blogs: %w", err)
	}
	return blogs, nil
}

func (r *MongoContentRepo) ListBusinesses(ctx context.Context, q models.PageQuery) ([]models.Business, int64, error) {
	q = q.Normalize()
	filter := searchFilter(q.Search, "venue_name", "email", "venue_address", "contact_person")

	var businesses []models.Business
	total, err := listPage(ctx, r.businessColl, filter, q, &businesses, "businesses")
	if err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

func (r *MongoContentRepo) ListContacts(ctx context.Context, q models.PageQuery) ([]models.Contact, int64, error) {
	q = q.Normalize()
	filter := searchFilter(q.Search, "business_name", "email", "contact_person")

	var contacts []models.Contact
	total, err := listPage(ctx, r.contactColl, filter, q, &contacts, "contacts")
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}
