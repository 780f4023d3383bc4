package routes

import (
	"net/http"
	"time"

	"capetown/handlers"
	"capetown/middleware"
	"capetown/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/revoke", hb.RevokeUserTokenHandler)
		api.DELETE("/delete", hb.DeleteUserHandler)
	}
}

// RegisterCatalogRoutes registers the public listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/hotels", hb.ListHotelsHandler)
		api.GET("/restaurants", hb.ListRestaurantsHandler)
		api.GET("/attractions", hb.ListAttractionsHandler)
		api.GET("/items/:id", hb.GetCatalogItemHandler)
	}
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterPaymentRoutes sets up the checkout RPC and the webhook. The
// webhook is unauthenticated on purpose: its trust comes from signature
// verification, not a session.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/checkout-session", hb.CreateCheckoutSessionHandler)
	}

	r.POST("/webhooks/stripe", hb.StripeWebhookHandler)
}

// RegisterAIRoutes registers assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/chat", hb.AIChatHandler)
		api.DELETE("/chat", hb.AIClearChatHandler)
		api.POST("/itinerary", hb.AIItineraryHandler)
		api.POST("/budget", hb.AIBudgetHandler)
		api.POST("/weather-tips", hb.AIWeatherTipsHandler)
	}
}

// RegisterWeatherRoutes registers the public weather endpoints.
func RegisterWeatherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/weather")
	{
		api.GET("/current", hb.CurrentWeatherHandler)
		api.GET("/forecast", hb.WeatherForecastHandler)
	}
}

// RegisterItineraryRoutes registers saved trip plan endpoints.
func RegisterItineraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itineraries")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.SaveItineraryHandler)
		api.GET("", hb.ListItinerariesHandler)
		api.DELETE("/:id", hb.DeleteItineraryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"health": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterWeatherRoutes(r, hb)
	RegisterItineraryRoutes(r, hb)
	RegisterHealthRoute(r)
}
