package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"nimtoz/models"
	"nimtoz/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account administration.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// List handles GET /user.
func (h *UserHandler) List(c *gin.Context) {
	q := pageQuery(c)
	users, total, err := h.Svc.ListUsers(c.Request.Context(), q)
	if err != nil {
		getLogger(c).Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, pageResponse(q, total, "users", users))
}

// GetByID handles GET /user/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User " + id + " doesn't exist"})
			return
		}
		getLogger(c).Error("Failed to fetch user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// Update handles PUT /user/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User does not exist"})
			return
		}
		getLogger(c).Error("Failed to update user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// Delete handles DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User does not exist"})
			return
		}
		getLogger(c).Error("Failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User Deleted"})
}

// TopBookers handles GET /topbookers.
func (h *UserHandler) TopBookers(c *gin.Context) {
	limit := 5
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}

	bookers, err := h.Svc.TopBookers(c.Request.Context(), limit)
	if err != nil {
		getLogger(c).Error("Failed to rank top bookers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": bookers})
}
