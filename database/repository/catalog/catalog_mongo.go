package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/config"
	"nimtoz/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	categoryColl  *mongo.Collection
	districtColl  *mongo.Collection
	eventTypeColl *mongo.Collection
	lineItemColl  *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoCatalogRepo{
		categoryColl:  db.Collection("categories"),
		districtColl:  db.Collection("districts"),
		eventTypeColl: db.Collection("event_types"),
		lineItemColl:  db.Collection("line_items"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	idIndex := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	for _, coll := range []*mongo.Collection{r.categoryColl, r.districtColl, r.eventTypeColl} {
		if _, err := coll.Indexes().CreateMany(ctx, idIndex); err != nil {
			return fmt.Errorf("failed to create catalog indexes: %w", err)
		}
	}

	lineItemIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
	}
	if _, err := r.lineItemColl.Indexes().CreateMany(ctx, lineItemIndexes); err != nil {
		return fmt.Errorf("failed to create line item indexes: %w", err)
	}
	return nil
}
