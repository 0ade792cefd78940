package handlers

import (
	"net/http"

	bookingRepo "nimtoz/database/repository/booking"
	catalogRepo "nimtoz/database/repository/catalog"
	contentRepo "nimtoz/database/repository/content"
	productRepo "nimtoz/database/repository/product"
	userRepo "nimtoz/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes the dashboard entity counts.
type StatsHandler struct {
	Users    userRepo.UserRepository
	Products productRepo.ProductRepository
	Bookings bookingRepo.BookingRepository
	Catalog  catalogRepo.CatalogRepository
	Content  contentRepo.ContentRepository
}

// Counts handles GET /stats.
func (h *StatsHandler) Counts(c *gin.Context) {
	ctx := c.Request.Context()
	counts := gin.H{}

	queries := []struct {
		key   string
		count func() (int64, error)
	}{
		{"users", func() (int64, error) { return h.Users.Count(ctx) }},
		{"business", func() (int64, error) { return h.Content.CountBusinesses(ctx) }},
		{"location", func() (int64, error) { return h.Catalog.CountDistricts(ctx) }},
		{"products", func() (int64, error) { return h.Products.Count(ctx) }},
		{"bookings", func() (int64, error) { return h.Bookings.Count(ctx) }},
	}
	for _, q := range queries {
		n, err := q.count()
		if err != nil {
			getLogger(c).Error("Failed to load dashboard counts",
				zap.String("entity", q.key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
			return
		}
		counts[q.key] = n
	}

	c.JSON(http.StatusOK, counts)
}
