package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryProductCounts returns every category with the number of products
// listed under it, most recently updated categories first.
func (r *MongoCatalogRepo) CategoryProductCounts(ctx context.Context) ([]CategoryCount, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "id",
			"foreignField": "category_id",
			"as":           "products",
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"category_name": 1,
			"product_count": bson.M{"$size": "$products"},
		}}},
	}

	cursor, err := r.categoryColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count products per category: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []CategoryCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("error decoding category counts: %w", err)
	}
	return counts, nil
}
