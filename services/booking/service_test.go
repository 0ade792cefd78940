package booking

import (
	"context"
	"testing"
	"time"

	"nimtoz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		UserID:    "u1",
		ProductID: "p1",
		Hall:      []models.IDRef{{ID: "li1"}},
		Events:    []models.IDRef{{ID: "et1"}},
	}
}

func testProduct() *models.Product {
	return &models.Product{ID: "p1", Title: "Grand Palace", CategoryID: "c1"}
}

func testCategory() *models.Category {
	return &models.Category{ID: "c1", CategoryName: "Party Palace"}
}

func testUser() *models.User {
	return &models.User{ID: "u1", FirstName: "Asha", LastName: "Shrestha", Email: "asha@example.com"}
}

func testLineItems() []models.LineItem {
	return []models.LineItem{
		{ID: "li1", ProductID: "p1", Kind: models.KindPartyPalace, Name: "Main Hall", Price: 50000},
	}
}

func testEventTypes() []models.EventType {
	return []models.EventType{{ID: "et1", Title: "Wedding"}}
}

func TestCreateBooking_HappyPath(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	products.On("GetWithCategory", mock.Anything, "p1").Return(testProduct(), testCategory(), nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.Status == models.BookingStatusPending && b.ProductID == "p1" && b.UserID == "u1"
	})).Return(nil)
	notifier.On("EnqueueBookingRequested", mock.Anything, mock.Anything).Return(nil)

	view, err := svc.CreateBooking(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, models.BookingStatusPending, view.Status)
	assert.False(t, view.IsApproved)
	assert.False(t, view.IsRejected)
	assert.Nil(t, view.StartTime)
	assert.Nil(t, view.EndTime)
	assert.Equal(t, "Grand Palace", view.Product.Title)
	assert.Len(t, view.LineItems, 1)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateBooking_CombinesTimesWhenSupplied(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	req := validCreateRequest()
	req.StartTime = "10:30"
	req.EndTime = "22:00"

	products.On("GetWithCategory", mock.Anything, "p1").Return(testProduct(), testCategory(), nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("EnqueueBookingRequested", mock.Anything, mock.Anything).Return(nil)

	view, err := svc.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, view.StartTime)
	require.NotNil(t, view.EndTime)
	assert.Equal(t, time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC), *view.StartTime)
	assert.Equal(t, time.Date(2024, time.June, 3, 22, 0, 0, 0, time.UTC), *view.EndTime)
}

func TestCreateBooking_ValidationFailsBeforeAnyLookup(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	svc := newTestService(repo, products, new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	req := models.CreateBookingRequest{
		StartDate: "not-a-date",
		EndDate:   "",
		UserID:    "",
		ProductID: "p1",
	}

	_, err := svc.CreateBooking(context.Background(), req)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := make([]string, 0, len(valErr.Fields))
	for _, f := range valErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "end_date")
	assert.Contains(t, fields, "userId")
	products.AssertNotCalled(t, "GetWithCategory", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_ApprovedConflictAbortsWithoutPersisting(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	products.On("GetWithCategory", mock.Anything, "p1").Return(testProduct(), testCategory(), nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", mock.Anything, mock.Anything).
		Return(&models.Booking{ID: "b-approved", Status: models.BookingStatusApproved}, nil)

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeApprovedConflict, domErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "EnqueueBookingRequested", mock.Anything, mock.Anything)
}

func TestCreateBooking_DanglingCategoryIsProductNotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	// The product exists but its category_id resolves to no category doc.
	products.On("GetWithCategory", mock.Anything, "p1").Return(testProduct(), nil, nil)

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeProductNotFound, domErr.Code)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	catalog.AssertNotCalled(t, "GetLineItemsByIDs", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_KindMismatchRejected(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	svc := newTestService(repo, products, users, catalog, new(mockNotifier))

	// The product's category routes selections to the musical kind, but the
	// referenced line item is a party palace hall.
	products.On("GetWithCategory", mock.Anything, "p1").
		Return(testProduct(), &models.Category{ID: "c2", CategoryName: "Musical"}, nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Fields, 1)
	assert.Equal(t, "Hall", valErr.Fields[0].Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownCategoryFallsBackToHall(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	hallItems := []models.LineItem{
		{ID: "li1", ProductID: "p1", Kind: models.KindHall, Name: "Conference Hall", Price: 12000},
	}
	products.On("GetWithCategory", mock.Anything, "p1").
		Return(testProduct(), &models.Category{ID: "c9", CategoryName: "Something New"}, nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(hallItems, nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("EnqueueBookingRequested", mock.Anything, mock.Anything).Return(nil)

	view, err := svc.CreateBooking(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, models.KindHall, view.LineItems[0].Kind)
}

func TestCreateBooking_NotificationFailureDoesNotRollBack(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	products.On("GetWithCategory", mock.Anything, "p1").Return(testProduct(), testCategory(), nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	repo.On("FindApprovedIntersecting", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("FindPendingOverlapping", mock.Anything, "p1", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("EnqueueBookingRequested", mock.Anything, mock.Anything).
		Return(assert.AnError)

	view, err := svc.CreateBooking(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
