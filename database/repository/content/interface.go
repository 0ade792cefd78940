package contentRepo

import (
	"context"
	"errors"

	"nimtoz/models"
)

// ErrNotFound means no content record matched the given identifier.
var ErrNotFound = errors.New("content record not found")

// ContentRepository defines persistence for the editorial and business-facing
// records: blogs, venue businesses and contact inquiries.
type ContentRepository interface {
	CreateBlog(ctx context.Context, blog *models.Blog) error
	UpdateBlog(ctx context.Context, blog *models.Blog) error
	DeleteBlog(ctx context.Context, id string) error
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	ListBlogs(ctx context.Context, q models.PageQuery) ([]models.Blog, int64, error)
	// LatestApprovedBlogs returns the newest approved blogs for the
	// marketing site's stats strip.
	LatestApprovedBlogs(ctx context.Context, limit int) ([]models.Blog, error)

	CreateBusiness(ctx context.Context, business *models.Business) error
	UpdateBusiness(ctx context.Context, business *models.Business) error
	DeleteBusiness(ctx context.Context, id string) error
	GetBusinessByID(ctx context.Context, id string) (*models.Business, error)
	ListBusinesses(ctx context.Context, q models.PageQuery) ([]models.Business, int64, error)
	CountBusinesses(ctx context.Context) (int64, error)

	CreateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, id string) error
	ListContacts(ctx context.Context, q models.PageQuery) ([]models.Contact, int64, error)
}
