package booking

import (
	"context"
	"time"

	bookingRepo "nimtoz/database/repository/booking"
	catalogRepo "nimtoz/database/repository/catalog"
	productRepo "nimtoz/database/repository/product"
	userRepo "nimtoz/database/repository/user"
	"nimtoz/models"
	"nimtoz/services/notification"

	"github.com/go-redis/redis/v8"
)

// BookingService defines the interface for the booking lifecycle: admission
// control, creation, the approve/reject state machine, and dashboard stats.
type BookingService interface {
	// CheckAvailability classifies a candidate interval for a product as
	// admissible or blocked, without writing anything.
	CheckAvailability(ctx context.Context, productID string, start, end time.Time) error
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingView, error)
	ApproveBooking(ctx context.Context, id string) (*models.BookingView, error)
	RejectBooking(ctx context.Context, id string) (*models.BookingView, error)
	GetBooking(ctx context.Context, id string) (*models.BookingView, error)
	ListBookings(ctx context.Context, q models.PageQuery) ([]models.BookingView, int64, error)
	DeleteBooking(ctx context.Context, id string) error
	// GetBookingStats returns the 12-month approved/pending series starting
	// at reference's month.
	GetBookingStats(ctx context.Context, reference time.Time) ([]models.MonthlyBookingStat, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Products productRepo.ProductRepository
	Users    userRepo.UserRepository
	Catalog  catalogRepo.CatalogRepository
	Notifier notification.Producer
	// StatsCache holds the short-lived dashboard stats cache. Nil disables
	// caching.
	StatsCache redis.Cmdable
}
