package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"nimtoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
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

func listAll(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}, what string) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", what, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("error decoding %s: %w", what, err)
	}
	return nil
}

// --- Categories ---

func (r *MongoCatalogRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	return insertOne(ctx, r.categoryColl, category, "category")
}

func (r *MongoCatalogRepo) UpdateCategory(ctx context.Context, category *models.Category) error {
	category.UpdatedAt = time.Now()
	return updateByID(ctx, r.categoryColl, category.ID, category, "category")
}

func (r *MongoCatalogRepo) DeleteCategory(ctx context.Context, id string) error {
	return deleteByID(ctx, r.categoryColl, id, "category")
}

func (r *MongoCatalogRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := findByID(ctx, r.categoryColl, id, &category, "category"); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *MongoCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := listAll(ctx, r.categoryColl, bson.M{}, &categories, "categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

// --- Districts ---

func (r *MongoCatalogRepo) CreateDistrict(ctx context.Context, district *models.District) error {
	now := time.Now()
	district.CreatedAt = now
	district.UpdatedAt = now
	return insertOne(ctx, r.districtColl, district, "district")
}

func (r *MongoCatalogRepo) UpdateDistrict(ctx context.Context, district *models.District) error {
	district.UpdatedAt = time.Now()
	return updateByID(ctx, r.districtColl, district.ID, district, "district")
}

func (r *MongoCatalogRepo) DeleteDistrict(ctx context.Context, id string) error {
	return deleteByID(ctx, r.districtColl, id, "district")
}

func (r *MongoCatalogRepo) GetDistrictByID(ctx context.Context, id string) (*models.District, error) {
	var district models.District
	if err := findByID(ctx, r.districtColl, id, &district, "district"); err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *MongoCatalogRepo) ListDistricts(ctx context.Context) ([]models.District, error) {
	var districts []models.District
	if err := listAll(ctx, r.districtColl, bson.M{}, &districts, "districts"); err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *MongoCatalogRepo) CountDistricts(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	count, err := r.districtColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count districts: %w", err)
	}
	return count, nil
}

// --- Event types ---

func (r *MongoCatalogRepo) CreateEventType(ctx context.Context, eventType *models.EventType) error {
	now := time.Now()
	eventType.CreatedAt = now
	eventType.UpdatedAt = now
	return insertOne(ctx, r.eventTypeColl, eventType, "event type")
}

func (r *MongoCatalogRepo) UpdateEventType(ctx context.Context, eventType *models.EventType) error {
	eventType.UpdatedAt = time.Now()
	return updateByID(ctx, r.eventTypeColl, eventType.ID, eventType, "event type")
}

func (r *MongoCatalogRepo) DeleteEventType(ctx context.Context, id string) error {
	return deleteByID(ctx, r.eventTypeColl, id, "event type")
}

func (r *MongoCatalogRepo) GetEventTypeByID(ctx context.Context, id string) (*models.EventType, error) {
	var eventType models.EventType
	if err := findByID(ctx, r.eventTypeColl, id, &eventType, "event type"); err != nil {
		return nil, err
	}
	return &eventType, nil
}

func (r *MongoCatalogRepo) ListEventTypes(ctx context.Context) ([]models.EventType, error) {
	var eventTypes []models.EventType
	if err := listAll(ctx, r.eventTypeColl, bson.M{}, &eventTypes, "event types"); err != nil {
		return nil, err
	}
	return eventTypes, nil
}

func (r *MongoCatalogRepo) GetEventTypesByIDs(ctx context.Context, ids []string) ([]models.EventType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var eventTypes []models.EventType
	if err := listAll(ctx, r.eventTypeColl, bson.M{"id": bson.M{"$in": ids}}, &eventTypes, "event types"); err != nil {
		return nil, err
	}
	return eventTypes, nil
}

// --- Line items ---

func (r *MongoCatalogRepo) CreateLineItem(ctx context.Context, item *models.LineItem) error {
	return insertOne(ctx, r.lineItemColl, item, "line item")
}

func (r *MongoCatalogRepo) DeleteLineItem(ctx context.Context, id string) error {
	return deleteByID(ctx, r.lineItemColl, id, "line item")
}

func (r *MongoCatalogRepo) GetLineItemsByIDs(ctx context.Context, ids []string) ([]models.LineItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.lineItemColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch line items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.LineItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding line items: %w", err)
	}
	return items, nil
}

func (r *MongoCatalogRepo) ListLineItemsByProduct(ctx context.Context, productID string) ([]models.LineItem, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.lineItemColl.Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch line items for product %s: %w", productID, err)
	}
	defer cursor.Close(ctx)

	var items []models.LineItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding line items: %w", err)
	}
	return items, nil
}
