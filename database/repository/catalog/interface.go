package catalogRepo

import (
	"context"
	"errors"

	"nimtoz/models"
)

// ErrNotFound means no catalog record matched the given identifier.
var ErrNotFound = errors.New("catalog record not found")

// CategoryCount pairs a category name with how many products list under it.
type CategoryCount struct {
	CategoryName string `bson:"category_name" json:"category_name"`
	ProductCount int    `bson:"product_count" json:"product_count"`
}

// CatalogRepository defines persistence for the fixed reference vocabularies:
// categories, districts, event types and the line items bookings select from.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CategoryProductCounts(ctx context.Context) ([]CategoryCount, error)

	CreateDistrict(ctx context.Context, district *models.District) error
	UpdateDistrict(ctx context.Context, district *models.District) error
	DeleteDistrict(ctx context.Context, id string) error
	GetDistrictByID(ctx context.Context, id string) (*models.District, error)
	ListDistricts(ctx context.Context) ([]models.District, error)
	CountDistricts(ctx context.Context) (int64, error)

	CreateEventType(ctx context.Context, eventType *models.EventType) error
	UpdateEventType(ctx context.Context, eventType *models.EventType) error
	DeleteEventType(ctx context.Context, id string) error
	GetEventTypeByID(ctx context.Context, id string) (*models.EventType, error)
	ListEventTypes(ctx context.Context) ([]models.EventType, error)
	GetEventTypesByIDs(ctx context.Context, ids []string) ([]models.EventType, error)

	CreateLineItem(ctx context.Context, item *models.LineItem) error
	DeleteLineItem(ctx context.Context, id string) error
	GetLineItemsByIDs(ctx context.Context, ids []string) ([]models.LineItem, error)
	ListLineItemsByProduct(ctx context.Context, productID string) ([]models.LineItem, error)
}
