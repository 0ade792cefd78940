package product

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "nimtoz/database/repository/catalog"
	productRepo "nimtoz/database/repository/product"
	"nimtoz/models"
	"nimtoz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is surfaced when a product, or one of its references, is
// missing.
var ErrNotFound = errors.New("product not found")

// ProductService defines product listing management.
type ProductService interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*models.ProductDetail, error)
	ListProducts(ctx context.Context, q models.PageQuery) ([]models.ProductDetail, int64, error)
	HomepageProducts(ctx context.Context, criteria productRepo.HomepageCriteria) ([]models.ProductDetail, error)
	ProductImages(ctx context.Context, id string) ([]models.ProductImage, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]models.ProductDetail, error)
}

// DefaultProductService implements ProductService.
type DefaultProductService struct {
	Repo    productRepo.ProductRepository
	Catalog catalogRepo.CatalogRepository
}

// CreateProduct persists a product together with its line items. Line items
// take the kind the product's category routes to, so a booking's selections
// can later be validated against it.
func (s *DefaultProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	category, err := s.Catalog.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	p := &models.Product{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		CategoryID:  category.ID,
		DistrictID:  req.DistrictID,
		VenueID:     req.VenueID,
		Images:      imageRecords(req.ImageURLs),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.createItems(ctx, p.ID, category.CategoryName, req.Items); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct replaces the product's fields, images and line items
// wholesale, mirroring how the admin form submits the full listing each time.
func (s *DefaultProductService) UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}

	category, err := s.Catalog.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	existing, err := s.Catalog.ListLineItemsByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items for product %s: %w", id, err)
	}
	for _, item := range existing {
		if err := s.Catalog.DeleteLineItem(ctx, item.ID); err != nil {
			utils.GetLogger().Warn("Failed to remove replaced line item",
				zap.String("lineItemID", item.ID), zap.Error(err))
		}
	}

	p.Title = req.Title
	p.Description = req.Description
	p.Address = req.Address
	p.CategoryID = category.ID
	p.DistrictID = req.DistrictID
	p.VenueID = req.VenueID
	p.Images = imageRecords(req.ImageURLs)
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	if err := s.createItems(ctx, p.ID, category.CategoryName, req.Items); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultProductService) createItems(ctx context.Context, productID, categoryName string, inputs []models.LineItemInput) error {
	kind := models.KindForCategory(categoryName)
	for _, in := range inputs {
		item := &models.LineItem{
			ID:        uuid.New().String(),
			ProductID: productID,
			Kind:      kind,
			Name:      in.Name,
			Price:     in.Price,
		}
		if err := s.Catalog.CreateLineItem(ctx, item); err != nil {
			return fmt.Errorf("failed to create line item %q: %w", in.Name, err)
		}
	}
	return nil
}

func imageRecords(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.ProductImage{ID: uuid.New().String(), URL: url})
	}
	return images
}

// DeleteProduct removes the product and its line items.
func (s *DefaultProductService) DeleteProduct(ctx context.Context, id string) error {
	items, err := s.Catalog.ListLineItemsByProduct(ctx, id)
	if err == nil {
		for _, item := range items {
			if err := s.Catalog.DeleteLineItem(ctx, item.ID); err != nil {
				utils.GetLogger().Warn("Failed to remove line item of deleted product",
					zap.String("lineItemID", item.ID), zap.Error(err))
			}
		}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (s *DefaultProductService) GetProduct(ctx context.Context, id string) (*models.ProductDetail, error) {
	detail, err := s.Repo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return detail, nil
}

func (s *DefaultProductService) ListProducts(ctx context.Context, q models.PageQuery) ([]models.ProductDetail, int64, error) {
	details, total, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return details, total, nil
}

// HomepageProducts filters the public listing; only active venues appear.
func (s *DefaultProductService) HomepageProducts(ctx context.Context, criteria productRepo.HomepageCriteria) ([]models.ProductDetail, error) {
	details, err := s.Repo.HomepageSearch(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search homepage products: %w", err)
	}
	return details, nil
}

func (s *DefaultProductService) ProductImages(ctx context.Context, id string) ([]models.ProductImage, error) {
	images, err := s.Repo.Images(ctx, id)
	if err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch images for product %s: %w", id, err)
	}
	return images, nil
}

// ProductsByCategory lists active-venue products of one category.
func (s *DefaultProductService) ProductsByCategory(ctx context.Context, categoryID string) ([]models.ProductDetail, error) {
	category, err := s.Catalog.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
	}
	details, err := s.Repo.HomepageSearch(ctx, productRepo.HomepageCriteria{CategoryName: category.CategoryName})
	if err != nil {
		return nil, fmt.Errorf("failed to list products for category %s: %w", categoryID, err)
	}
	return details, nil
}
