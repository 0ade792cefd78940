package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	productRepo "nimtoz/database/repository/product"
	"nimtoz/models"
	"nimtoz/services/product"
	"nimtoz/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler exposes product listing management.
type ProductHandler struct {
	Svc     product.ProductService
	Storage storage.StorageService
}

func NewProductHandler(svc product.ProductService, store storage.StorageService) *ProductHandler {
	return &ProductHandler{Svc: svc, Storage: store}
}

// bindProductRequest accepts either a JSON body or a multipart form with
// image files. Multipart image files are uploaded to storage and their URLs
// substituted into the request.
func (h *ProductHandler) bindProductRequest(c *gin.Context) (models.CreateProductRequest, error) {
	var req models.CreateProductRequest

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
		return req, nil
	}

	req.Title = c.PostForm("title")
	req.Description = c.PostForm("description")
	req.Address = c.PostForm("address")
	req.CategoryID = c.PostForm("category")
	req.DistrictID = c.PostForm("location")
	req.VenueID = c.PostForm("business")
	if raw := c.PostForm("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Items); err != nil {
			return req, errors.New("items must be a JSON array of {name, price}")
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return req, err
	}
	for _, header := range form.File["product_image"] {
		file, err := header.Open()
		if err != nil {
			return req, err
		}
		_, url, err := h.Storage.UploadImage(c.Request.Context(), file, "products")
		file.Close()
		if err != nil {
			return req, err
		}
		req.ImageURLs = append(req.ImageURLs, url)
	}
	return req, nil
}

// Create handles POST /product.
func (h *ProductHandler) Create(c *gin.Context) {
	req, err := h.bindProductRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}
		getLogger(c).Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": p, "message": "Product Created"})
}

// Update handles PUT /product/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	req, err := h.bindProductRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Svc.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product does not exist"})
			return
		}
		getLogger(c).Error("Failed to update product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p, "message": "Product Updated"})
}

// Delete handles DELETE /product/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product with ID " + id + " does not exist"})
			return
		}
		getLogger(c).Error("Failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Deleted"})
}

// GetByID handles GET /product/:id.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.Svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Products " + id + " doesn't exist."})
			return
		}
		getLogger(c).Error("Failed to fetch product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": detail})
}

// List handles GET /product.
func (h *ProductHandler) List(c *gin.Context) {
	q := pageQuery(c)
	details, total, err := h.Svc.ListProducts(c.Request.Context(), q)
	if err != nil {
		getLogger(c).Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, pageResponse(q, total, "products", details))
}

// Homepage handles GET /homepageproducts.
func (h *ProductHandler) Homepage(c *gin.Context) {
	criteria := productRepo.HomepageCriteria{
		Search:       c.Query("search"),
		CategoryName: c.Query("category"),
		DistrictID:   c.Query("location"),
	}
	details, err := h.Svc.HomepageProducts(c.Request.Context(), criteria)
	if err != nil {
		getLogger(c).Error("Failed to search homepage products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": details})
}

// Images handles GET /productimages/:id.
func (h *ProductHandler) Images(c *gin.Context) {
	id := c.Param("id")
	images, err := h.Svc.ProductImages(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product Image " + id + " doesn't exist."})
			return
		}
		getLogger(c).Error("Failed to fetch product images", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

// ByCategory handles GET /productcategoryid/:id.
func (h *ProductHandler) ByCategory(c *gin.Context) {
	details, err := h.Svc.ProductsByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category does not exist"})
			return
		}
		getLogger(c).Error("Failed to list products by category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": details})
}
