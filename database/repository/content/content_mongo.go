package contentRepo

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

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	blogColl     *mongo.Collection
	businessColl *mongo.Collection
	contactColl  *mongo.Collection
}

// NewMongoContentRepo constructs a new instance of MongoContentRepo.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoContentRepo{
		blogColl:     db.Collection("blogs"),
		businessColl: db.Collection("businesses"),
		contactColl:  db.Collection("contacts"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	idIndex := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	for _, coll := range []*mongo.Collection{r.blogColl, r.businessColl, r.contactColl} {
		if _, err := coll.Indexes().CreateMany(ctx, idIndex); err != nil {
			return fmt.Errorf("failed to create content indexes: %w", err)
		}
	}

	blogIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_approved", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := r.blogColl.Indexes().CreateMany(ctx, blogIndexes); err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}
	return nil
}
