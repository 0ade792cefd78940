package routes

import (
	"time"

	"nimtoz/handlers"
	"nimtoz/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and password recovery
// endpoints. All of them are public.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/register", hb.Auth.Register)
	r.POST("/login", hb.Auth.Login)
	r.POST("/refresh_token", hb.Auth.Refresh)
	r.POST("/forgot-password", hb.Auth.ForgotPassword)
	r.POST("/reset-password", hb.Auth.ResetPassword)
}

// RegisterUserRoutes registers user management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/user")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		api.GET("", hb.User.List)
		api.GET("/:id", hb.User.GetByID)
		api.PUT("/:id", hb.User.Update)
		api.DELETE("/:id", hb.User.Delete)
	}
	r.GET("/topbookers", middleware.JWTAuthMiddleware(), middleware.RequireAdmin(), hb.User.TopBookers)
}

// RegisterBookingRoutes registers booking endpoints. Creation is open so
// visitors can request a reservation; everything else is admin-only.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.Booking.Create)

	admin := r.Group("/booking")
	{
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		admin.GET("", hb.Booking.List)
		admin.GET("/:id", hb.Booking.GetByID)
		admin.PUT("/:id", hb.Booking.Update)
		admin.DELETE("/:id", hb.Booking.Delete)
	}
	r.GET("/bookingstats", middleware.JWTAuthMiddleware(), middleware.RequireAdmin(), hb.Booking.Stats)
}

// RegisterProductRoutes registers product endpoints. Read endpoints back the
// public storefront; writes are admin-only.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/product", hb.Product.List)
	r.GET("/product/:id", hb.Product.GetByID)
	r.GET("/homepageproducts", hb.Product.Homepage)
	r.GET("/productimages/:id", hb.Product.Images)
	r.GET("/productcategoryid/:id", hb.Product.ByCategory)

	admin := r.Group("/product")
	{
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Product.Create)
		admin.PUT("/:id", hb.Product.Update)
		admin.DELETE("/:id", hb.Product.Delete)
	}
}

// RegisterCatalogRoutes registers category, location and event type endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/category", hb.Catalog.ListCategories)
	r.GET("/category/:id", hb.Catalog.GetCategory)
	r.GET("/count_category", hb.Catalog.CategoryCounts)
	r.GET("/location", hb.Catalog.ListDistricts)
	r.GET("/location/:id", hb.Catalog.GetDistrict)
	r.GET("/eventtype", hb.Catalog.ListEventTypes)
	r.GET("/eventtype/:id", hb.Catalog.GetEventType)

	admin := r.Group("")
	{
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		admin.POST("/category", hb.Catalog.CreateCategory)
		admin.PUT("/category/:id", hb.Catalog.UpdateCategory)
		admin.DELETE("/category/:id", hb.Catalog.DeleteCategory)
		admin.POST("/location", hb.Catalog.CreateDistrict)
		admin.PUT("/location/:id", hb.Catalog.UpdateDistrict)
		admin.DELETE("/location/:id", hb.Catalog.DeleteDistrict)
		admin.POST("/eventtype", hb.Catalog.CreateEventType)
		admin.PUT("/eventtype/:id", hb.Catalog.UpdateEventType)
		admin.DELETE("/eventtype/:id", hb.Catalog.DeleteEventType)
	}
}

// RegisterContentRoutes registers blog, business and contact form endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/blog", hb.Content.ListBlogs)
	r.GET("/blog/:id", hb.Content.GetBlog)
	r.GET("/stat-blogs", hb.Content.LatestBlogs)
	r.GET("/business", hb.Content.ListBusinesses)
	r.GET("/business/:id", hb.Content.GetBusiness)
	r.POST("/contact", hb.Content.CreateContact)

	admin := r.Group("")
	{
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		admin.POST("/blog", hb.Content.CreateBlog)
		admin.PUT("/blog/:id", hb.Content.UpdateBlog)
		admin.DELETE("/blog/:id", hb.Content.DeleteBlog)
		admin.POST("/business", hb.Content.CreateBusiness)
		admin.PUT("/business/:id", hb.Content.UpdateBusiness)
		admin.DELETE("/business/:id", hb.Content.DeleteBusiness)
		admin.GET("/contact", hb.Content.ListContacts)
		admin.DELETE("/contact/:id", hb.Content.DeleteContact)
	}
}

// RegisterStatsRoutes registers the dashboard counts endpoint.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/stats", middleware.JWTAuthMiddleware(), middleware.RequireAdmin(), hb.Stats.Counts)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterHealthRoute(r)
}
