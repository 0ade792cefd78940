package productRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// detailLookups joins a product with its category, district, venue and line
// items. Shared by every detail-shaped query.
func detailLookups() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "category_id",
			"foreignField": "id",
			"as":           "category",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "districts",
			"localField":   "district_id",
			"foreignField": "id",
			"as":           "district",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "businesses",
			"localField":   "venue_id",
			"foreignField": "id",
			"as":           "venue",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "line_items",
			"localField":   "id",
			"foreignField": "product_id",
			"as":           "items",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$district", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$venue", "preserveNullAndEmptyArrays": true}}},
	}
}

func (r *MongoProductRepo) aggregateDetails(ctx context.Context, pipeline mongo.Pipeline) ([]models.ProductDetail, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var details []models.ProductDetail
	for cursor.Next(ctx) {
		var d models.ProductDetail
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("error decoding product detail: %w", err)
		}
		details = append(details, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error querying products: %w", err)
	}
	return details, nil
}

// GetWithCategory resolves a product together with its category.
func (r *MongoProductRepo) GetWithCategory(ctx context.Context, id string) (*models.Product, *models.Category, error) {
	detail, err := r.GetDetail(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &detail.Product, detail.Category, nil
}

// GetDetail retrieves a product joined with its references and line items.
func (r *MongoProductRepo) GetDetail(ctx context.Context, id string) (*models.ProductDetail, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"id": id}}},
	}, detailLookups()...)

	details, err := r.aggregateDetails(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

// List returns a page of product details, newest updates first, optionally
// filtered by a case-insensitive search over title and address.
func (r *MongoProductRepo) List(ctx context.Context, q models.PageQuery) ([]models.ProductDetail, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	q = q.Normalize()

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": q.Search, "$options": "i"}},
			bson.M{"address": bson.M{"$regex": q.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: q.Skip()}},
		bson.D{{Key: "$limit", Value: int64(q.Limit)}},
	}, detailLookups()...)

	details, err := r.aggregateDetails(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// HomepageSearch returns products of active venues matching the public
// listing filters.
func (r *MongoProductRepo) HomepageSearch(ctx context.Context, criteria HomepageCriteria) ([]models.ProductDetail, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := detailLookups()

	match := bson.M{"venue.active": true}
	if criteria.Search != "" {
		match["title"] = bson.M{"$regex": criteria.Search, "$options": "i"}
	}
	if criteria.CategoryName != "" {
		match["category.category_name"] = criteria.CategoryName
	}
	if criteria.DistrictID != "" {
		match["district_id"] = criteria.DistrictID
	}
	pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}})

	return r.aggregateDetails(ctx, pipeline)
}
