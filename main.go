package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capetown/config"
	"capetown/cron"
	"capetown/database"
	bookingRepoPkg "capetown/database/repository/booking"
	itineraryRepoPkg "capetown/database/repository/itinerary"
	userRepoPkg "capetown/database/repository/user"
	"capetown/handlers"
	"capetown/middleware"
	"capetown/routes"
	"capetown/services/booking"
	"capetown/services/catalog"
	ai "capetown/services/intelligence"
	"capetown/services/itinerary"
	"capetown/services/notification"
	"capetown/services/payment"
	"capetown/services/user"
	"capetown/services/weather"
	"capetown/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	itineraryRepo := itineraryRepoPkg.NewMongoItineraryRepo()
	fallbackStore := bookingRepoPkg.NewRedisFallbackStore(utils.GetCacheClient(), 72*time.Hour)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	catalogService := catalog.NewService()

	checkoutIssuer := payment.NewStripeCheckoutIssuer(logger, config.AppConfig.SiteBaseURL)
	webhookProcessor := payment.NewWebhookProcessor(bookingRepo, config.AppConfig.StripeWebhookSecret, logger)

	notificationService, err := notification.NewDefaultNotificationService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker(bookingRepo, notificationService)

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Fallback:  fallbackStore,
		Issuer:    checkoutIssuer,
		Catalog:   catalogService,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	itineraryService := &itinerary.DefaultItineraryService{
		Repo:   itineraryRepo,
		Logger: logger,
	}

	weatherClient := weather.NewClient("", logger)

	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	assistantService := &ai.DefaultAssistantService{
		Generator: ai.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		CtxStore:  ctxStore,
		Logger:    logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler(userService),
		AuthenticateUserHandler: handlers.AuthenticateUserHandler(userService),
		GetUserByIDHandler:      handlers.GetUserByIDHandler(userService),
		UpdateFCMTokenHandler:   handlers.UpdateFCMTokenHandler(userService),
		RevokeUserTokenHandler:  handlers.RevokeUserTokenHandler(userService),
		DeleteUserHandler:       handlers.DeleteUserHandler(userService),

		// Catalog endpoints.
		ListHotelsHandler:      handlers.ListHotelsHandler(catalogService),
		ListRestaurantsHandler: handlers.ListRestaurantsHandler(catalogService),
		ListAttractionsHandler: handlers.ListAttractionsHandler(catalogService),
		GetCatalogItemHandler:  handlers.GetCatalogItemHandler(catalogService),

		// Booking endpoints.
		CreateBookingHandler: handlers.CreateBookingHandler(bookingService),
		ListBookingsHandler:  handlers.ListBookingsHandler(bookingService),
		GetBookingHandler:    handlers.GetBookingHandler(bookingService),
		DeleteBookingHandler: handlers.DeleteBookingHandler(bookingService),

		// Payment endpoints.
		CreateCheckoutSessionHandler: handlers.CreateCheckoutSessionHandler(checkoutIssuer),
		StripeWebhookHandler:         handlers.StripeWebhookHandler(webhookProcessor),

		// AI endpoints.
		AIChatHandler:        handlers.AIChatHandler(assistantService),
		AIClearChatHandler:   handlers.AIClearChatHandler(assistantService),
		AIItineraryHandler:   handlers.AIItineraryHandler(assistantService),
		AIBudgetHandler:      handlers.AIBudgetHandler(assistantService),
		AIWeatherTipsHandler: handlers.AIWeatherTipsHandler(assistantService, weatherClient),

		// Weather endpoints.
		CurrentWeatherHandler:  handlers.CurrentWeatherHandler(weatherClient),
		WeatherForecastHandler: handlers.WeatherForecastHandler(weatherClient),

		// Itinerary endpoints.
		SaveItineraryHandler:   handlers.SaveItineraryHandler(itineraryService),
		ListItinerariesHandler: handlers.ListItinerariesHandler(itineraryService),
		DeleteItineraryHandler: handlers.DeleteItineraryHandler(itineraryService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
