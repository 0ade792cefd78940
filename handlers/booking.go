package handlers

import (
	"net/http"
	"time"

	"nimtoz/models"
	"nimtoz/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// Create handles POST /booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	view, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": view})
}

// Update handles PUT /booking/:id. A true is_approved approves the booking;
// false rejects it.
func (h *BookingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	var err error
	message := "Booking Approved"
	if *req.IsApproved {
		_, err = h.Svc.ApproveBooking(c.Request.Context(), id)
	} else {
		_, err = h.Svc.RejectBooking(c.Request.Context(), id)
		message = "Booking Rejected"
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "error": false, "message": message})
}

// List handles GET /booking.
func (h *BookingHandler) List(c *gin.Context) {
	q := pageQuery(c)
	views, total, err := h.Svc.ListBookings(c.Request.Context(), q)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, pageResponse(q, total, "bookings", views))
}

// GetByID handles GET /booking/:id.
func (h *BookingHandler) GetByID(c *gin.Context) {
	view, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": view})
}

// Delete handles DELETE /booking/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking Deleted"})
}

// Stats handles GET /bookingstats.
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.GetBookingStats(c.Request.Context(), time.Now().UTC())
	if err != nil {
		getLogger(c).Error("Failed to compute booking stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
