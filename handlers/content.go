package handlers

import (
	"errors"
	"net/http"
	"strings"

	contentRepo "nimtoz/database/repository/content"
	"nimtoz/models"
	"nimtoz/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentHandler exposes blogs, venue businesses and the contact form.
type ContentHandler struct {
	Repo    contentRepo.ContentRepository
	Storage storage.StorageService
}

func NewContentHandler(repo contentRepo.ContentRepository, store storage.StorageService) *ContentHandler {
	return &ContentHandler{Repo: repo, Storage: store}
}

func (h *ContentHandler) internalError(c *gin.Context, what string, err error) {
	getLogger(c).Error(what, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
}

func (h *ContentHandler) notFoundOrInternal(c *gin.Context, what string, err error) {
	if errors.Is(err, contentRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": what + " does not exist"})
		return
	}
	h.internalError(c, "Failed content operation", err)
}

// --- Blogs ---

func (h *ContentHandler) bindBlog(c *gin.Context) (*models.Blog, error) {
	var blog models.Blog

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		blog.Title = c.PostForm("title")
		blog.Description = c.PostForm("description")
		blog.AuthorID = c.PostForm("author_id")
		if header, err := c.FormFile("image"); err == nil {
			file, err := header.Open()
			if err != nil {
				return nil, err
			}
			defer file.Close()
			_, url, err := h.Storage.UploadImage(c.Request.Context(), file, "blogs")
			if err != nil {
				return nil, err
			}
			blog.Image = url
		}
	} else if err := c.ShouldBindJSON(&blog); err != nil {
		return nil, err
	}

	if blog.Title == "" || blog.Description == "" {
		return nil, errors.New("title and description are required")
	}
	return &blog, nil
}

func (h *ContentHandler) CreateBlog(c *gin.Context) {
	blog, err := h.bindBlog(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	blog.ID = uuid.New().String()

	if err := h.Repo.CreateBlog(c.Request.Context(), blog); err != nil {
		h.internalError(c, "Failed to create blog", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "blog": blog, "message": "Blog Created"})
}

func (h *ContentHandler) UpdateBlog(c *gin.Context) {
	blog, err := h.bindBlog(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	blog.ID = c.Param("id")

	if err := h.Repo.UpdateBlog(c.Request.Context(), blog); err != nil {
		h.notFoundOrInternal(c, "Blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog, "message": "Blog Updated"})
}

func (h *ContentHandler) DeleteBlog(c *gin.Context) {
	if err := h.Repo.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrInternal(c, "Blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog Deleted"})
}

func (h *ContentHandler) GetBlog(c *gin.Context) {
	blog, err := h.Repo.GetBlogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, "Blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

func (h *ContentHandler) ListBlogs(c *gin.Context) {
	q := pageQuery(c)
	blogs, total, err := h.Repo.ListBlogs(c.Request.Context(), q)
	if err != nil {
		h.internalError(c, "Failed to list blogs", err)
		return
	}
	c.JSON(http.StatusOK, pageResponse(q, total, "blogs", blogs))
}

// LatestBlogs handles GET /stat-blogs.
func (h *ContentHandler) LatestBlogs(c *gin.Context) {
	blogs, err := h.Repo.LatestApprovedBlogs(c.Request.Context(), 3)
	if err != nil {
		h.internalError(c, "Failed to fetch latest blogs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
}

// --- Businesses ---

func (h *ContentHandler) CreateBusiness(c *gin.Context) {
	var business models.Business
	if err := c.ShouldBindJSON(&business); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	business.ID = uuid.New().String()

	if err := h.Repo.CreateBusiness(c.Request.Context(), &business); err != nil {
		h.internalError(c, "Failed to create business", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "business": business, "message": "Business Created"})
}

func (h *ContentHandler) UpdateBusiness(c *gin.Context) {
	var business models.Business
	if err := c.ShouldBindJSON(&business); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	business.ID = c.Param("id")

	if err := h.Repo.UpdateBusiness(c.Request.Context(), &business); err != nil {
		h.notFoundOrInternal(c, "Business", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "business": business, "message": "Business Updated"})
}

func (h *ContentHandler) DeleteBusiness(c *gin.Context) {
	if err := h.Repo.DeleteBusiness(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrInternal(c, "Business", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Business Deleted"})
}

func (h *ContentHandler) GetBusiness(c *gin.Context) {
	business, err := h.Repo.GetBusinessByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, "Business", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "business": business})
}

func (h *ContentHandler) ListBusinesses(c *gin.Context) {
	q := pageQuery(c)
	businesses, total, err := h.Repo.ListBusinesses(c.Request.Context(), q)
	if err != nil {
		h.internalError(c, "Failed to list businesses", err)
		return
	}
	c.JSON(http.StatusOK, pageResponse(q, total, "businesses", businesses))
}

// --- Contacts ---

func (h *ContentHandler) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	contact.ID = uuid.New().String()

	if err := h.Repo.CreateContact(c.Request.Context(), &contact); err != nil {
		h.internalError(c, "Failed to create contact", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "contact": contact, "message": "Contact Created"})
}

func (h *ContentHandler) DeleteContact(c *gin.Context) {
	if err := h.Repo.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrInternal(c, "Contact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact Deleted"})
}

func (h *ContentHandler) ListContacts(c *gin.Context) {
	q := pageQuery(c)
	contacts, total, err := h.Repo.ListContacts(c.Request.Context(), q)
	if err != nil {
		h.internalError(c, "Failed to list contacts", err)
		return
	}
	c.JSON(http.StatusOK, pageResponse(q, total, "contacts", contacts))
}
