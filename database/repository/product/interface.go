package productRepo

import (
	"context"
	"errors"

	"nimtoz/models"
)

// ErrNotFound means no product matched the given identifier.
var ErrNotFound = errors.New("product not found")

// HomepageCriteria filters the public product listing. Zero values mean
// "no filter"; only products of active venues are ever returned.
type HomepageCriteria struct {
	Search       string
	CategoryName string
	DistrictID   string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// GetWithCategory resolves a product together with its category, as the
	// booking admission path needs both in one step.
	GetWithCategory(ctx context.Context, id string) (*models.Product, *models.Category, error)
	GetDetail(ctx context.Context, id string) (*models.ProductDetail, error)
	List(ctx context.Context, q models.PageQuery) ([]models.ProductDetail, int64, error)
	HomepageSearch(ctx context.Context, criteria HomepageCriteria) ([]models.ProductDetail, error)
	Images(ctx context.Context, id string) ([]models.ProductImage, error)
	Count(ctx context.Context) (int64, error)
}
