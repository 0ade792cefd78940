package booking

import (
	"context"
	"errors"
	"fmt"

	productRepo "nimtoz/database/repository/product"
	userRepo "nimtoz/database/repository/user"
	"nimtoz/models"
	"nimtoz/services/notification"
	"nimtoz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking admits and persists a new booking request. Validation runs
// field by field before any database access; the availability check runs
// after the product and its category resolve. The created booking always
// starts pending. The creation notification is enqueued after commit and its
// failure never rolls the booking back.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingView, error) {
	logger := utils.GetLogger()

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	start, end := req.ParsedDates()

	product, category, err := s.Products.GetWithCategory(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return nil, NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to resolve product %s: %w", req.ProductID, err)
	}
	// A product whose category_id dangles resolves with a nil category.
	if category == nil {
		return nil, NewProductNotFoundError()
	}

	user, err := s.Users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, &ValidationError{Fields: []models.FieldError{
				{Field: "userId", Message: "user not found"},
			}}
		}
		return nil, fmt.Errorf("failed to resolve user %s: %w", req.UserID, err)
	}

	items, err := s.resolveLineItems(ctx, req, product, category)
	if err != nil {
		return nil, err
	}
	eventTypes, err := s.resolveEventTypes(ctx, req.Events)
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(ctx, product.ID, start, end); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		UserID:       user.ID,
		StartDate:    start,
		EndDate:      end,
		StartTime:    combineDateAndTime(start, req.StartTime),
		EndTime:      combineDateAndTime(end, req.EndTime),
		Status:       models.BookingStatusPending,
		LineItemIDs:  itemIDs(items),
		EventTypeIDs: eventTypeIDs(eventTypes),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	payload := notification.BookingRequestedPayload{
		BookingID:    b.ID,
		ProductTitle: product.Title,
		UserName:     user.FirstName + " " + user.LastName,
		UserEmail:    user.Email,
		UserPhone:    user.PhoneNumber,
		StartDate:    formatDate(b.StartDate),
		EndDate:      formatDate(b.EndDate),
		LineItems:    itemSummaries(items),
		EventTypes:   eventTypeTitles(eventTypes),
	}
	if err := s.Notifier.EnqueueBookingRequested(ctx, payload); err != nil {
		logger.Error("Failed to enqueue booking request notification",
			zap.String("bookingID", b.ID), zap.Error(err))
	}

	view := models.NewBookingView(*b)
	view.User = user
	view.Product = product
	view.LineItems = items
	view.EventTypes = eventTypes
	return &view, nil
}

// resolveLineItems loads the requested line items and enforces that every
// selection belongs to the booked product and carries the kind the product's
// category routes to. Unknown category names route to the generic hall kind.
func (s *DefaultBookingService) resolveLineItems(ctx context.Context, req models.CreateBookingRequest, product *models.Product, category *models.Category) ([]models.LineItem, error) {
	ids := make([]string, 0, len(req.Hall))
	for _, ref := range req.Hall {
		ids = append(ids, ref.ID)
	}
	items, err := s.Catalog.GetLineItemsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve line items: %w", err)
	}
	if len(items) != len(ids) {
		return nil, &ValidationError{Fields: []models.FieldError{
			{Field: "Hall", Message: "one or more line items do not exist"},
		}}
	}

	kind := models.KindForCategory(category.CategoryName)
	for _, item := range items {
		if item.ProductID != product.ID {
			return nil, &ValidationError{Fields: []models.FieldError{
				{Field: "Hall", Message: fmt.Sprintf("line item %s does not belong to this product", item.ID)},
			}}
		}
		if item.Kind != kind {
			return nil, &ValidationError{Fields: []models.FieldError{
				{Field: "Hall", Message: fmt.Sprintf("line item %s does not match the product category %s", item.ID, category.CategoryName)},
			}}
		}
	}
	return items, nil
}

func (s *DefaultBookingService) resolveEventTypes(ctx context.Context, refs []models.IDRef) ([]models.EventType, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	eventTypes, err := s.Catalog.GetEventTypesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve event types: %w", err)
	}
	if len(eventTypes) != len(ids) {
		return nil, &ValidationError{Fields: []models.FieldError{
			{Field: "events", Message: "one or more event types do not exist"},
		}}
	}
	return eventTypes, nil
}

func itemIDs(items []models.LineItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func eventTypeIDs(eventTypes []models.EventType) []string {
	ids := make([]string, 0, len(eventTypes))
	for _, et := range eventTypes {
		ids = append(ids, et.ID)
	}
	return ids
}

func eventTypeTitles(eventTypes []models.EventType) []string {
	titles := make([]string, 0, len(eventTypes))
	for _, et := range eventTypes {
		titles = append(titles, et.Title)
	}
	return titles
}

func itemSummaries(items []models.LineItem) []notification.LineItemSummary {
	summaries := make([]notification.LineItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, notification.LineItemSummary{
			Kind:  string(item.Kind),
			Name:  item.Name,
			Price: item.Price,
		})
	}
	return summaries
}
