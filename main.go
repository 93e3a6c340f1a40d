// File: glambook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glambook/config"
	"glambook/cron"
	"glambook/database"
	artistRepoPkg "glambook/database/repository/artist"
	bookingRepoPkg "glambook/database/repository/booking"
	orderRepoPkg "glambook/database/repository/order"
	productRepoPkg "glambook/database/repository/product"
	reviewRepoPkg "glambook/database/repository/review"
	userRepoPkg "glambook/database/repository/user"
	"glambook/handlers"
	"glambook/middleware"
	"glambook/routes"
	"glambook/services/artist"
	"glambook/services/availability"
	"glambook/services/catalog"
	"glambook/services/order"
	"glambook/services/review"
	"glambook/services/tasks"
	"glambook/services/user"
	"glambook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	platformTZ, err := time.LoadLocation(config.AppConfig.PlatformTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid platform timezone %q: %v", config.AppConfig.PlatformTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	artistRepo := artistRepoPkg.NewMongoArtistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	artistService := &artist.DefaultArtistService{Repo: artistRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: productRepo}
	orderService := &order.DefaultOrderService{
		Orders:   orderRepo,
		Products: productRepo,
		Carts:    &order.RedisCartStore{Client: utils.GetCacheClient()},
	}
	reviewService := &review.DefaultReviewService{
		Reviews:  reviewRepo,
		Bookings: bookingRepo,
		Artists:  artistRepo,
	}
	engine := &availability.DefaultEngine{
		Artists:  artistRepo,
		Bookings: bookingRepo,
		Defaults: availability.DefaultConfig(),
		Location: platformTZ,
	}

	// background expiry worker for pending bookings.
	taskQueue := tasks.NewQueueClient()
	cron.InitExpiryWorker(engine)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler(userService),
		AuthenticateUserHandler: handlers.AuthenticateUserHandler(userService),
		GetUserHandler:          handlers.GetUserHandler(userService),
		UpdateUserHandler:       handlers.UpdateUserHandler(userService),
		DeleteUserHandler:       handlers.DeleteUserHandler(userService),
		RevokeTokenHandler:      handlers.RevokeTokenHandler(userService),

		// Artist endpoints.
		ListArtistsHandler:     handlers.ListArtistsHandler(artistService),
		GetArtistHandler:       handlers.GetArtistHandler(artistService),
		CreateArtistHandler:    handlers.CreateArtistHandler(artistService),
		UpdateArtistHandler:    handlers.UpdateArtistHandler(artistService),
		DeleteArtistHandler:    handlers.DeleteArtistHandler(artistService),
		SetAvailabilityHandler: handlers.SetAvailabilityHandler(artistService),

		// Booking endpoints.
		GetSlotsHandler:            handlers.GetSlotsHandler(engine),
		ReserveSlotHandler:         handlers.ReserveSlotHandler(engine, taskQueue),
		CancelBookingHandler:       handlers.CancelBookingHandler(engine, bookingRepo, artistRepo),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatusHandler(engine, bookingRepo, artistRepo),
		ListMyBookingsHandler:      handlers.ListMyBookingsHandler(bookingRepo),
		ListArtistBookingsHandler:  handlers.ListArtistBookingsHandler(bookingRepo, artistRepo),

		// Product endpoints.
		ListProductsHandler:  handlers.ListProductsHandler(catalogService),
		GetProductHandler:    handlers.GetProductHandler(catalogService),
		CreateProductHandler: handlers.CreateProductHandler(catalogService),
		UpdateProductHandler: handlers.UpdateProductHandler(catalogService),
		DeleteProductHandler: handlers.DeleteProductHandler(catalogService),

		// Cart and order endpoints.
		GetCartHandler:           handlers.GetCartHandler(orderService),
		AddToCartHandler:         handlers.AddToCartHandler(orderService),
		RemoveFromCartHandler:    handlers.RemoveFromCartHandler(orderService),
		CheckoutHandler:          handlers.CheckoutHandler(orderService),
		ListOrdersHandler:        handlers.ListOrdersHandler(orderService),
		ListAllOrdersHandler:     handlers.ListAllOrdersHandler(orderService),
		UpdateOrderStatusHandler: handlers.UpdateOrderStatusHandler(orderService),

		// Review endpoints.
		CreateReviewHandler: handlers.CreateReviewHandler(reviewService),
		ListReviewsHandler:  handlers.ListReviewsHandler(reviewService),
		DeleteReviewHandler: handlers.DeleteReviewHandler(reviewService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterUserRoutes(router, handlerBundle)
	routes.RegisterArtistRoutes(router, handlerBundle)
	routes.RegisterBookingRoutes(router, handlerBundle)
	routes.RegisterShopRoutes(router, handlerBundle)
	routes.RegisterReviewRoutes(router, handlerBundle)
	routes.RegisterAdminRoutes(router, handlerBundle)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
