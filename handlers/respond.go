package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"nimtoz/models"
	"nimtoz/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pageResponse is the legacy pagination envelope shared by the list
// endpoints. The entity slice is attached under its own key by the caller.
func pageResponse(q models.PageQuery, totalCount int64, key string, rows interface{}) gin.H {
	return gin.H{
		"success":     true,
		"totalCount":  totalCount,
		"totalPages":  q.TotalPages(totalCount),
		"currentPage": q.Page,
		key:           rows,
	}
}

// pageQuery reads the shared search/page/limit query params.
func pageQuery(c *gin.Context) models.PageQuery {
	q := models.PageQuery{Search: c.Query("search")}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = limit
	}
	return q.Normalize()
}

// writeDomainError translates booking-domain failures to the wire contract:
// per-field 400s for validation, 404 for missing records, 409 with a stable
// code for conflicts, and an opaque 500 for everything else.
func writeDomainError(c *gin.Context, err error) {
	var valErr *booking.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": valErr.Fields})
		return
	}

	var domErr *booking.DomainError
	if errors.As(err, &domErr) {
		switch domErr.Code {
		case booking.CodeProductNotFound, booking.CodeBookingNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "code": domErr.Code, "error": domErr.Message})
		default:
			c.JSON(http.StatusConflict, gin.H{"success": false, "code": domErr.Code, "message": domErr.Message})
		}
		return
	}

	getLogger(c).Error("Unhandled booking failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
}
