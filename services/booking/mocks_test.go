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

	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepo) List(ctx context.Context, q models.PageQuery) ([]models.BookingView, int64, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]models.BookingView)
	return views, int64(args.Int(1)), args.Error(2)
}

func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}

func (m *mockBookingRepo) FindApprovedIntersecting(ctx context.Context, productID string, start, end time.Time) (*models.Booking, error) {
	args := m.Called(ctx, productID, start, end)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindPendingOverlapping(ctx context.Context, productID string, start, end time.Time) (*models.Booking, error) {
	args := m.Called(ctx, productID, start, end)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Approve(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Reject(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) MonthlyStatusCounts(ctx context.Context, windowStart, windowEnd time.Time) ([]bookingRepo.StatusCount, error) {
	args := m.Called(ctx, windowStart, windowEnd)
	counts, _ := args.Get(0).([]bookingRepo.StatusCount)
	return counts, args.Error(1)
}

var _ bookingRepo.BookingRepository = (*mockBookingRepo)(nil)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *models.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, p *models.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetWithCategory(ctx context.Context, id string) (*models.Product, *models.Category, error) {
	args := m.Called(ctx, id)
	var p *models.Product
	var c *models.Category
	if v := args.Get(0); v != nil {
		p = v.(*models.Product)
	}
	if v := args.Get(1); v != nil {
		c = v.(*models.Category)
	}
	return p, c, args.Error(2)
}

func (m *mockProductRepo) GetDetail(ctx context.Context, id string) (*models.ProductDetail, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*models.ProductDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, q models.PageQuery) ([]models.ProductDetail, int64, error) {
	args := m.Called(ctx, q)
	details, _ := args.Get(0).([]models.ProductDetail)
	return details, int64(args.Int(1)), args.Error(2)
}

func (m *mockProductRepo) HomepageSearch(ctx context.Context, criteria productRepo.HomepageCriteria) ([]models.ProductDetail, error) {
	args := m.Called(ctx, criteria)
	details, _ := args.Get(0).([]models.ProductDetail)
	return details, args.Error(1)
}

func (m *mockProductRepo) Images(ctx context.Context, id string) ([]models.ProductImage, error) {
	args := m.Called(ctx, id)
	images, _ := args.Get(0).([]models.ProductImage)
	return images, args.Error(1)
}

func (m *mockProductRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}

var _ productRepo.ProductRepository = (*mockProductRepo)(nil)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, hashed string) error {
	args := m.Called(ctx, id, hashed)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, q models.PageQuery) ([]models.User, int64, error) {
	args := m.Called(ctx, q)
	users, _ := args.Get(0).([]models.User)
	return users, int64(args.Int(1)), args.Error(2)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}

func (m *mockUserRepo) TopBookers(ctx context.Context, limit int) ([]models.TopBooker, error) {
	args := m.Called(ctx, limit)
	bookers, _ := args.Get(0).([]models.TopBooker)
	return bookers, args.Error(1)
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCatalogRepo) UpdateCategory(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCatalogRepo) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *mockCatalogRepo) CategoryProductCounts(ctx context.Context) ([]catalogRepo.CategoryCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]catalogRepo.CategoryCount)
	return counts, args.Error(1)
}

func (m *mockCatalogRepo) CreateDistrict(ctx context.Context, d *models.District) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockCatalogRepo) UpdateDistrict(ctx context.Context, d *models.District) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockCatalogRepo) DeleteDistrict(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogRepo) GetDistrictByID(ctx context.Context, id string) (*models.District, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*models.District), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) ListDistricts(ctx context.Context) ([]models.District, error) {
	args := m.Called(ctx)
	districts, _ := args.Get(0).([]models.District)
	return districts, args.Error(1)
}

func (m *mockCatalogRepo) CountDistricts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}

func (m *mockCatalogRepo) CreateEventType(ctx context.Context, et *models.EventType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *mockCatalogRepo) UpdateEventType(ctx context.Context, et *models.EventType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *mockCatalogRepo) DeleteEventType(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogRepo) GetEventTypeByID(ctx context.Context, id string) (*models.EventType, error) {
	args := m.Called(ctx, id)
	if et := args.Get(0); et != nil {
		return et.(*models.EventType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) ListEventTypes(ctx context.Context) ([]models.EventType, error) {
	args := m.Called(ctx)
	eventTypes, _ := args.Get(0).([]models.EventType)
	return eventTypes, args.Error(1)
}

func (m *mockCatalogRepo) GetEventTypesByIDs(ctx context.Context, ids []string) ([]models.EventType, error) {
	args := m.Called(ctx, ids)
	eventTypes, _ := args.Get(0).([]models.EventType)
	return eventTypes, args.Error(1)
}

func (m *mockCatalogRepo) CreateLineItem(ctx context.Context, item *models.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockCatalogRepo) DeleteLineItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogRepo) GetLineItemsByIDs(ctx context.Context, ids []string) ([]models.LineItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]models.LineItem)
	return items, args.Error(1)
}

func (m *mockCatalogRepo) ListLineItemsByProduct(ctx context.Context, productID string) ([]models.LineItem, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]models.LineItem)
	return items, args.Error(1)
}

var _ catalogRepo.CatalogRepository = (*mockCatalogRepo)(nil)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) EnqueueBookingRequested(ctx context.Context, p notification.BookingRequestedPayload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockNotifier) EnqueueBookingDecided(ctx context.Context, p notification.BookingDecidedPayload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockNotifier) EnqueuePasswordReset(ctx context.Context, p notification.PasswordResetPayload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

var _ notification.Producer = (*mockNotifier)(nil)
