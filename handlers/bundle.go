package handlers

import (
	userRepoPkg "capetown/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserByIDHandler      gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc
	RevokeUserTokenHandler  gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc

	// Catalog endpoints
	ListHotelsHandler      gin.HandlerFunc
	ListRestaurantsHandler gin.HandlerFunc
	ListAttractionsHandler gin.HandlerFunc
	GetCatalogItemHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc

	// Payment endpoints
	CreateCheckoutSessionHandler gin.HandlerFunc
	StripeWebhookHandler         gin.HandlerFunc

	// AI endpoints
	AIChatHandler        gin.HandlerFunc
	AIClearChatHandler   gin.HandlerFunc
	AIItineraryHandler   gin.HandlerFunc
	AIBudgetHandler      gin.HandlerFunc
	AIWeatherTipsHandler gin.HandlerFunc

	// Weather endpoints
	CurrentWeatherHandler  gin.HandlerFunc
	WeatherForecastHandler gin.HandlerFunc

	// Itinerary endpoints
	SaveItineraryHandler   gin.HandlerFunc
	ListItinerariesHandler gin.HandlerFunc
	DeleteItineraryHandler gin.HandlerFunc
}
