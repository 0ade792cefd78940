package productRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new product document.
func (r *MongoProductRepo) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update modifies an existing product document.
func (r *MongoProductRepo) Update(ctx context.Context, product *models.Product) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	product.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": product.ID}, bson.M{"$set": product})
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", product.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product document by its ID.
func (r *MongoProductRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a product document by its ID.
func (r *MongoProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching product with id %s: %w", id, err)
	}
	return &product, nil
}

// Images returns the uploaded images attached to a product.
func (r *MongoProductRepo) Images(ctx context.Context, id string) ([]models.ProductImage, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product.Images, nil
}

// Count returns the total number of product documents.
func (r *MongoProductRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
