package handlers

import (
	"errors"
	"net/http"
	"strings"

	catalogRepo "nimtoz/database/repository/catalog"
	"nimtoz/models"
	"nimtoz/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogHandler exposes the reference vocabularies: categories, districts
// and event types.
type CatalogHandler struct {
	Repo    catalogRepo.CatalogRepository
	Storage storage.StorageService
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository, store storage.StorageService) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Storage: store}
}

func (h *CatalogHandler) internalError(c *gin.Context, what string, err error) {
	getLogger(c).Error(what, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
}

func (h *CatalogHandler) notFoundOrInternal(c *gin.Context, what string, err error) {
	if errors.Is(err, catalogRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": what + " does not exist"})
		return
	}
	h.internalError(c, "Failed catalog operation", err)
}

// --- Categories ---

// bindCategory reads a category from JSON, or from a multipart form whose
// icon file is uploaded to storage.
func (h *CatalogHandler) bindCategory(c *gin.Context) (*models.Category, error) {
	var category models.Category

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		category.CategoryName = c.PostForm("category_name")
		if header, err := c.FormFile("category_icon"); err == nil {
			file, err := header.Open()
			if err != nil {
				return nil, err
			}
			defer file.Close()
			_, url, err := h.Storage.UploadImage(c.Request.Context(), file, "categories")
			if err != nil {
				return nil, err
			}
			category.CategoryIcon = url
		}
	} else if err := c.ShouldBindJSON(&category); err != nil {
		return nil, err
	}

	if category.CategoryName == "" {
		return nil, errors.New("category_name is required")
	}
	return &category, nil
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	category, err := h.bindCategory(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	category.ID = uuid.New().String()

	if err := h.Repo.CreateCategory(c.Request.Context(), category); err != nil {
		h.internalError(c, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": category, "message": "Category Created"})
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	category, err := h.bindCategory(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	category.ID = c.Param("id")

	if err := h.Repo.UpdateCategory(c.Request.Context(), category); err != nil {
		h.notFoundOrInternal(c, "Category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category, "message": "Category Updated"})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.Repo.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrInternal(c, "Category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Deleted"})
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.Repo.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, "Category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Repo.ListCategories(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// CategoryCounts handles GET /count_category.
func (h *CatalogHandler) CategoryCounts(c *gin.Context) {
	counts, err := h.Repo.CategoryProductCounts(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to count categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": counts})
}

// --- Districts (locations) ---

func (h *CatalogHandler) CreateDistrict(c *gin.Context) {
	var district models.District
	if err := c.ShouldBindJSON(&district); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	district.ID = uuid.New().String()

	if err := h.Repo.CreateDistrict(c.Request.Context(), &district); err != nil {
		h.internalError(c, "Failed to create district", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "location": district, "message": "Location Created"})
}

func (h *CatalogHandler) UpdateDistrict(c *gin.Context) {
	var district models.District
	if err := c.ShouldBindJSON(&district); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	district.ID = c.Param("id")

	if err := h.Repo.UpdateDistrict(c.Request.Context(), &district); err != nil {
		h.notFoundOrInternal(c, "Location", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "location": district, "message": "Location Updated"})
}

func (h *CatalogHandler) DeleteDistrict(c *gin.Context) {
	if err := h.Repo.DeleteDistrict(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrInternal(c, "Location", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Location Deleted"})
}

func (h *CatalogHandler) GetDistrict(c *gin.Context) {
	district, err := h.Repo.GetDistrictByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, "Location", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "location": district})
}

func (h *CatalogHandler) ListDistricts(c *gin.Context) {
	districts, err := h.Repo.ListDistricts(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list districts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "locations": districts})
}

// --- Event types ---

func (h *CatalogHandler) CreateEventType(c *gin.Context) {
	var eventType models.EventType
	if err := c.ShouldBindJSON(&eventType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	eventType.ID = uuid.New().String()

	if err := h.Repo.CreateEventType(c.Request.Context(), &eventType); err != nil {
		h.internalError(c, "Failed to create event type", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "eventtype": eventType, "message": "Event Type Created"})
}

func (h *CatalogHandler) UpdateEventType(c *gin.Context) {
	var eventType models.EventType
	if err := c.ShouldBindJSON(&eventType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	eventType.ID = c.Param("id")

	if err := h.Repo.UpdateEventType(c.Request.Context(), &eventType); err != nil {
		h.notFoundOrInternal(c, "Event Type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "eventtype": eventType, "message": "Event Type Updated"})
}

func (h *CatalogHandler) DeleteEventType(c *gin.Context) {
	if err := h.Repo.DeleteEventType(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrInternal(c, "Event Type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event Type Deleted"})
}

func (h *CatalogHandler) GetEventType(c *gin.Context) {
	eventType, err := h.Repo.GetEventTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, "Event Type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "eventtype": eventType})
}

func (h *CatalogHandler) ListEventTypes(c *gin.Context) {
	eventTypes, err := h.Repo.ListEventTypes(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list event types", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "eventtypes": eventTypes})
}
