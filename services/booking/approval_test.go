package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "nimtoz/database/repository/booking"
	"nimtoz/models"
	"nimtoz/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedBooking() *models.Booking {
	return &models.Booking{
		ID:           "b1",
		ProductID:    "p1",
		UserID:       "u1",
		StartDate:    date(2024, time.June, 1),
		EndDate:      date(2024, time.June, 3),
		Status:       models.BookingStatusApproved,
		LineItemIDs:  []string{"li1"},
		EventTypeIDs: []string{"et1"},
	}
}

func TestApproveBooking_HappyPath(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	repo.On("Approve", mock.Anything, "b1").Return(approvedBooking(), nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	products.On("GetByID", mock.Anything, "p1").Return(testProduct(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	notifier.On("EnqueueBookingDecided", mock.Anything, mock.MatchedBy(func(p notification.BookingDecidedPayload) bool {
		return p.Approved && p.UserEmail == "asha@example.com" && p.ProductTitle == "Grand Palace"
	})).Return(nil)

	view, err := svc.ApproveBooking(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, view.IsApproved)
	assert.False(t, view.IsRejected)
	assert.Equal(t, models.BookingStatusApproved, view.Status)
	notifier.AssertExpectations(t)
}

func TestApproveBooking_NotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := newTestService(repo, new(mockProductRepo), new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	repo.On("Approve", mock.Anything, "missing").Return(nil, bookingRepo.ErrNotFound)

	_, err := svc.ApproveBooking(context.Background(), "missing")

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeBookingNotFound, domErr.Code)
}

func TestApproveBooking_AlreadyDecidedIsStateConflict(t *testing.T) {
	repo := new(mockBookingRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, new(mockProductRepo), new(mockUserRepo), new(mockCatalogRepo), notifier)

	repo.On("Approve", mock.Anything, "b1").Return(nil, bookingRepo.ErrNotPending)
	repo.On("GetByID", mock.Anything, "b1").Return(approvedBooking(), nil)

	_, err := svc.ApproveBooking(context.Background(), "b1")

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeStateConflict, domErr.Code)
	assert.Contains(t, domErr.Message, "approved")
	// No re-notification on a second approval attempt.
	notifier.AssertNotCalled(t, "EnqueueBookingDecided", mock.Anything, mock.Anything)
}

func TestApproveBooking_ConcurrentConflictSurfaces(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := newTestService(repo, new(mockProductRepo), new(mockUserRepo), new(mockCatalogRepo), new(mockNotifier))

	repo.On("Approve", mock.Anything, "b2").Return(nil, bookingRepo.ErrApprovedConflict)

	_, err := svc.ApproveBooking(context.Background(), "b2")

	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, CodeApprovedConflict, domErr.Code)
}

func TestRejectBooking_HappyPath(t *testing.T) {
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	rejected := approvedBooking()
	rejected.Status = models.BookingStatusRejected
	repo.On("Reject", mock.Anything, "b1").Return(rejected, nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	products.On("GetByID", mock.Anything, "p1").Return(testProduct(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	notifier.On("EnqueueBookingDecided", mock.Anything, mock.MatchedBy(func(p notification.BookingDecidedPayload) bool {
		return !p.Approved
	})).Return(nil)

	view, err := svc.RejectBooking(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, view.IsRejected)
	assert.False(t, view.IsApproved)
}

func TestApproveBooking_DoesNotTouchOtherBookings(t *testing.T) {
	// Approving one booking must not mutate any other booking: the only
	// repository write the service may issue is the single Approve call.
	repo := new(mockBookingRepo)
	products := new(mockProductRepo)
	users := new(mockUserRepo)
	catalog := new(mockCatalogRepo)
	notifier := new(mockNotifier)
	svc := newTestService(repo, products, users, catalog, notifier)

	repo.On("Approve", mock.Anything, "b1").Return(approvedBooking(), nil)
	users.On("GetByID", mock.Anything, "u1").Return(testUser(), nil)
	products.On("GetByID", mock.Anything, "p1").Return(testProduct(), nil)
	catalog.On("GetLineItemsByIDs", mock.Anything, []string{"li1"}).Return(testLineItems(), nil)
	catalog.On("GetEventTypesByIDs", mock.Anything, []string{"et1"}).Return(testEventTypes(), nil)
	notifier.On("EnqueueBookingDecided", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.ApproveBooking(context.Background(), "b1")

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNumberOfCalls(t, "Approve", 1)
}
