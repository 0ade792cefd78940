package booking

import (
	"context"
	"testing"
	"time"

	productRepo "nimtoz/database/repository/product"
	"nimtoz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo *mockBookingRepo, products *mockProductRepo, users *mockUserRepo, catalog *mockCatalogRepo, notifier *mockNotifier) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Products: products,
		Users:    users,
		Catalog:  catalog,
		Notifier: notifier,
	}
}

func TestCheckAvailability_Admissible(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	start, end := date(2024, time.June, 1), date(2024, time.June, 3)
	products.On("GetWithCategory", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, &models.Category{ID: "c1", CategoryName: "Party Palace"}, nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", start, end).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", start, end).Return(nil, nil)

	err := svc.CheckAvailability(context.Background(), "p1", start, end)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCheckAvailability_ProductNotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	products.On("GetWithCategory", mock.Anything, "missing").Return(nil, nil, productRepo.ErrNotFound)

	err := svc.CheckAvailability(context.Background(), "missing", date(2024, time.June, 1), date(2024, time.June, 3))

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeProductNotFound, domErr.Code)
	repo.AssertNotCalled(t, "FindApprovedIntersecting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAvailability_DanglingCategoryIsProductNotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	// The product record exists but references a deleted category.
	products.On("GetWithCategory", mock.Anything, "p1").Return(&models.Product{ID: "p1", CategoryID: "gone"}, nil, nil)

	err := svc.CheckAvailability(context.Background(), "p1", date(2024, time.June, 1), date(2024, time.June, 3))

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeProductNotFound, domErr.Code)
	repo.AssertNotCalled(t, "FindApprovedIntersecting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAvailability_ApprovedConflictTakesPrecedence(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	start, end := date(2024, time.June, 1), date(2024, time.June, 5)
	products.On("GetWithCategory", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, &models.Category{ID: "c1", CategoryName: "Party Palace"}, nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", start, end).
		Return(&models.Booking{ID: "b1", Status: models.BookingStatusApproved}, nil)

	err := svc.CheckAvailability(context.Background(), "p1", start, end)

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeApprovedConflict, domErr.Code)
	// The pending scan must never run once an approved conflict is found.
	repo.AssertNotCalled(t, "FindPendingOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAvailability_ApprovedAdjacencyBlocks(t *testing.T) {
	// An approved booking 2024-08-01..2024-08-10 blocks a request starting
	// exactly on 2024-08-10: the approved comparison is inclusive.
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	start, end := date(2024, time.August, 10), date(2024, time.August, 12)
	products.On("GetWithCategory", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, &models.Category{ID: "c1", CategoryName: "Party Palace"}, nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", start, end).
		Return(&models.Booking{
			ID:        "approved-1",
			StartDate: date(2024, time.August, 1),
			EndDate:   date(2024, time.August, 10),
			Status:    models.BookingStatusApproved,
		}, nil)

	err := svc.CheckAvailability(context.Background(), "p1", start, end)

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeApprovedConflict, domErr.Code)
}

func TestCheckAvailability_PendingOverlapMessageQuotesExistingRange(t *testing.T) {
	// Pending booking 2024-07-01..2024-07-05, request 2024-07-04..2024-07-08:
	// blocked, and the message quotes the existing request's dates.
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	start, end := date(2024, time.July, 4), date(2024, time.July, 8)
	products.On("GetWithCategory", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, &models.Category{ID: "c1", CategoryName: "Party Palace"}, nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", start, end).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", start, end).
		Return(&models.Booking{
			ID:        "pending-1",
			StartDate: date(2024, time.July, 1),
			EndDate:   date(2024, time.July, 5),
			Status:    models.BookingStatusPending,
		}, nil)

	err := svc.CheckAvailability(context.Background(), "p1", start, end)

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodePendingOverlap, domErr.Code)
	assert.Contains(t, domErr.Message, "July 1, 2024")
	assert.Contains(t, domErr.Message, "July 5, 2024")
}

func TestCheckAvailability_PendingAdjacencyAllowed(t *testing.T) {
	// A pending booking ending 2024-06-10 does not block a request starting
	// 2024-06-10: the pending comparison is strict, so the repository query
	// finds nothing and the request is admissible.
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	start, end := date(2024, time.June, 10), date(2024, time.June, 12)
	products.On("GetWithCategory", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, &models.Category{ID: "c1", CategoryName: "Party Palace"}, nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", start, end).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", start, end).Return(nil, nil)

	err := svc.CheckAvailability(context.Background(), "p1", start, end)

	require.NoError(t, err)
}
