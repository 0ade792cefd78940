package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nimtoz/models"
	"nimtoz/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	mock.Mock
}

var _ booking.BookingService = (*mockBookingService)(nil)

func (m *mockBookingService) CheckAvailability(ctx context.Context, productID string, start, end time.Time) error {
	args := m.Called(ctx, productID, start, end)
	return args.Error(0)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingView, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ApproveBooking(ctx context.Context, id string) (*models.BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) RejectBooking(ctx context.Context, id string) (*models.BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, id string) (*models.BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ListBookings(ctx context.Context, q models.PageQuery) ([]models.BookingView, int64, error) {
	args := m.Called(ctx, q)
	var views []models.BookingView
	if v := args.Get(0); v != nil {
		views = v.([]models.BookingView)
	}
	return views, int64(args.Int(1)), args.Error(2)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingService) GetBookingStats(ctx context.Context, reference time.Time) ([]models.MonthlyBookingStat, error) {
	args := m.Called(ctx, reference)
	if v := args.Get(0); v != nil {
		return v.([]models.MonthlyBookingStat), args.Error(1)
	}
	return nil, args.Error(1)
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.POST("/booking", h.Create)
	r.GET("/booking", h.List)
	r.GET("/booking/:id", h.GetByID)
	r.PUT("/booking/:id", h.Update)
	r.DELETE("/booking/:id", h.Delete)
	r.GET("/bookingstats", h.Stats)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func pendingView(id string) *models.BookingView {
	view := models.NewBookingView(models.Booking{
		ID:        id,
		ProductID: "prod-1",
		UserID:    "user-1",
		StartDate: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Status:    models.BookingStatusPending,
	})
	return &view
}

func TestBookingHandler_CreateReturnsCreatedEnvelope(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).Return(pendingView("bk-1"), nil)

	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/booking", models.CreateBookingRequest{
		StartDate: "2024-07-10",
		EndDate:   "2024-07-12",
		UserID:    "user-1",
		ProductID: "prod-1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	bookingBody, ok := body["booking"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bk-1", bookingBody["id"])
	assert.Equal(t, false, bookingBody["is_approved"])
	assert.Equal(t, false, bookingBody["is_rejected"])
	svc.AssertExpectations(t)
}

func TestBookingHandler_CreateValidationFailureListsFields(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, &booking.ValidationError{
		Fields: []models.FieldError{
			{Field: "end_date", Message: "end_date is required"},
			{Field: "userId", Message: "userId is required"},
		},
	})

	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/booking", models.CreateBookingRequest{
		StartDate: "2024-07-10",
		ProductID: "prod-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	fields, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestBookingHandler_CreateConflictCarriesCode(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, booking.NewPendingOverlapError(
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
	))

	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/booking", models.CreateBookingRequest{
		StartDate: "2024-07-03",
		EndDate:   "2024-07-04",
		UserID:    "user-1",
		ProductID: "prod-1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "pendingOverlap", body["code"])
	assert.Equal(t, "Booking already exists from July 1, 2024 to July 5, 2024", body["message"])
}

func TestBookingHandler_CreateMissingProductIs404(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, booking.NewProductNotFoundError())

	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/booking", models.CreateBookingRequest{
		StartDate: "2024-07-03",
		EndDate:   "2024-07-04",
		UserID:    "user-1",
		ProductID: "ghost",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "productNotFound", body["code"])
}

func TestBookingHandler_UpdateApproves(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("ApproveBooking", mock.Anything, "bk-1").Return(pendingView("bk-1"), nil)

	approve := true
	w := doJSON(t, newBookingRouter(svc), http.MethodPut, "/booking/bk-1", models.UpdateBookingRequest{IsApproved: &approve})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Booking Approved", body["message"])
	svc.AssertNotCalled(t, "RejectBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_UpdateRejects(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("RejectBooking", mock.Anything, "bk-1").Return(pendingView("bk-1"), nil)

	approve := false
	w := doJSON(t, newBookingRouter(svc), http.MethodPut, "/booking/bk-1", models.UpdateBookingRequest{IsApproved: &approve})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Booking Rejected", body["message"])
	svc.AssertNotCalled(t, "ApproveBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_UpdateWithoutDecisionIsBadRequest(t *testing.T) {
	svc := new(mockBookingService)

	w := doJSON(t, newBookingRouter(svc), http.MethodPut, "/booking/bk-1", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ApproveBooking", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "RejectBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_UpdateAlreadyDecidedIsConflict(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("ApproveBooking", mock.Anything, "bk-1").Return(nil, booking.NewStateConflictError(models.BookingStatusApproved))

	approve := true
	w := doJSON(t, newBookingRouter(svc), http.MethodPut, "/booking/bk-1", models.UpdateBookingRequest{IsApproved: &approve})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "stateConflict", body["code"])
}

func TestBookingHandler_GetByIDNotFound(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("GetBooking", mock.Anything, "ghost").Return(nil, booking.NewBookingNotFoundError("ghost"))

	w := doJSON(t, newBookingRouter(svc), http.MethodGet, "/booking/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "bookingNotFound", body["code"])
	assert.Equal(t, "Booking with ID ghost does not exist", body["error"])
}

func TestBookingHandler_ListWrapsPaginationEnvelope(t *testing.T) {
	svc := new(mockBookingService)
	views := []models.BookingView{*pendingView("bk-1"), *pendingView("bk-2")}
	svc.On("ListBookings", mock.Anything, models.PageQuery{Search: "hall", Page: 2, Limit: 5}).
		Return(views, 12, nil)

	w := doJSON(t, newBookingRouter(svc), http.MethodGet, "/booking?search=hall&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 12, body["totalCount"])
	assert.EqualValues(t, 3, body["totalPages"])
	assert.EqualValues(t, 2, body["currentPage"])
	rows, ok := body["bookings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 2)
}

func TestBookingHandler_DeleteReturnsLegacyMessage(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("DeleteBooking", mock.Anything, "bk-1").Return(nil)

	w := doJSON(t, newBookingRouter(svc), http.MethodDelete, "/booking/bk-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Booking Deleted", body["message"])
	svc.AssertExpectations(t)
}

func TestBookingHandler_StatsReturnsRawSeries(t *testing.T) {
	svc := new(mockBookingService)
	stats := []models.MonthlyBookingStat{
		{Month: "Jul", Approved: 2, NotApproved: 1},
		{Month: "Aug", Approved: 0, NotApproved: 3},
	}
	svc.On("GetBookingStats", mock.Anything, mock.Anything).Return(stats, nil)

	w := doJSON(t, newBookingRouter(svc), http.MethodGet, "/bookingstats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var series []models.MonthlyBookingStat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Equal(t, stats, series)
}
