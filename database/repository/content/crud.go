package contentRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}, what string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create %s: %w", what, err)
	}
	return nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}, what string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update %s with id %s: %w", what, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id, what string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %s: %w", what, id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func findByID(ctx context.Context, coll *mongo.Collection, id string, out interface{}, what string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(out); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching %s with id %s: %w", what, id, err)
	}
	return nil
}

// --- Blogs ---

func (r *MongoContentRepo) CreateBlog(ctx context.Context, blog *models.Blog) error {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	return insertOne(ctx, r.blogColl, blog, "blog")
}

func (r *MongoContentRepo) UpdateBlog(ctx context.Context, blog *models.Blog) error {
	blog.UpdatedAt = time.Now()
	return updateByID(ctx, r.blogColl, blog.ID, blog, "blog")
}

func (r *MongoContentRepo) DeleteBlog(ctx context.Context, id string) error {
	return deleteByID(ctx, r.blogColl, id, "blog")
}

func (r *MongoContentRepo) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	if err := findByID(ctx, r.blogColl, id, &blog, "blog"); err != nil {
		return nil, err
	}
	return &blog, nil
}

// --- Businesses ---

func (r *MongoContentRepo) CreateBusiness(ctx context.Context, business *models.Business) error {
	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now
	return insertOne(ctx, r.businessColl, business, "business")
}

func (r *MongoContentRepo) UpdateBusiness(ctx context.Context, business *models.Business) error {
	business.UpdatedAt = time.Now()
	return updateByID(ctx, r.businessColl, business.ID, business, "business")
}

func (r *MongoContentRepo) DeleteBusiness(ctx context.Context, id string) error {
	return deleteByID(ctx, r.businessColl, id, "business")
}

func (r *MongoContentRepo) GetBusinessByID(ctx context.Context, id string) (*models.Business, error) {
	var business models.Business
	if err := findByID(ctx, r.businessColl, id, &business, "business"); err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *MongoContentRepo) CountBusinesses(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	count, err := r.businessColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}

// --- Contacts ---

func (r *MongoContentRepo) CreateContact(ctx context.Context, contact *models.Contact) error {
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return insertOne(ctx, r.contactColl, contact, "contact")
}

func (r *MongoContentRepo) DeleteContact(ctx context.Context, id string) error {
	return deleteByID(ctx, r.contactColl, id, "contact")
}
