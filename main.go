package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nimtoz/config"
	"nimtoz/cron"
	"nimtoz/database"
	bookingRepoPkg "nimtoz/database/repository/booking"
	catalogRepoPkg "nimtoz/database/repository/catalog"
	contentRepoPkg "nimtoz/database/repository/content"
	productRepoPkg "nimtoz/database/repository/product"
	userRepoPkg "nimtoz/database/repository/user"
	"nimtoz/handlers"
	"nimtoz/middleware"
	"nimtoz/routes"
	"nimtoz/services/booking"
	"nimtoz/services/notification"
	"nimtoz/services/product"
	"nimtoz/services/storage"
	"nimtoz/services/user"
	"nimtoz/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()

	// notification pipeline: async producer feeding the mail worker.
	producer := notification.NewAsynqProducer()
	defer producer.Close()
	mailer := notification.NewMailNotifier()
	cron.InitNotificationWorker(mailer)

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Products:   productRepo,
		Users:      userRepo,
		Catalog:    catalogRepo,
		Notifier:   producer,
		StatsCache: utils.GetCacheClient(),
	}
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Notifier:  producer,
		AuthCache: utils.GetAuthCacheClient(),
	}
	productService := &product.DefaultProductService{
		Repo:    productRepo,
		Catalog: catalogRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		User:    handlers.NewUserHandler(userService),
		Booking: handlers.NewBookingHandler(bookingService),
		Product: handlers.NewProductHandler(productService, storageService),
		Catalog: handlers.NewCatalogHandler(catalogRepo, storageService),
		Content: handlers.NewContentHandler(contentRepo, storageService),
		Stats: &handlers.StatsHandler{
			Users:    userRepo,
			Products: productRepo,
			Bookings: bookingRepo,
			Catalog:  catalogRepo,
			Content:  contentRepo,
		},
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "7000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
