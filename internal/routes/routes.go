// Package routes defines the API routing configuration.
// It wires repositories, services, and handlers together and
// registers all HTTP routes on the fiber app.
package routes

import (
	"github.com/SanmaySarada/CardGeniusMVP/internal/config"
	"github.com/SanmaySarada/CardGeniusMVP/internal/handlers"
	"github.com/SanmaySarada/CardGeniusMVP/internal/repositories"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/places"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/rewards"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Initialize repositories
	cardRepo := repositories.NewCardRepository(repositories.DB)
	bankRepo := repositories.NewBankConnectionRepository(repositories.DB)
	locationRepo := repositories.NewLocationRepository(repositories.DB)
	notificationRepo := repositories.NewNotificationRepository(repositories.DB)

	// Initialize services. The typed-nil guards keep a disabled redis from
	// leaking a non-nil interface into the services.
	var walletCache wallet.Cache
	if repositories.CacheService != nil {
		walletCache = repositories.CacheService
	}
	walletService := wallet.NewService(cardRepo, bankRepo, locationRepo, walletCache)

	var matrixSource rewards.Source
	if url := config.GetEnv("MATRIX_URL", ""); url != "" {
		matrixSource = &rewards.HTTPSource{URL: url}
	} else {
		matrixSource = &rewards.FileSource{Path: config.GetEnv("MATRIX_PATH", "data/card_rewards_matrix.csv")}
	}
	rewardsService := rewards.NewService(matrixSource, nil)

	var placesCache places.Cache
	if repositories.CacheService != nil {
		placesCache = repositories.CacheService
	}
	placesService := places.NewService(places.Config{
		APIKey: config.GetEnv("GOOGLE_PLACES_API_KEY", ""),
		Cache:  placesCache,
	})

	// Initialize handlers
	cardHandler := handlers.NewCardHandler(walletService)
	bankHandler := handlers.NewBankHandler(walletService)
	locationHandler := handlers.NewLocationHandler(walletService)
	placesHandler := handlers.NewPlacesHandler(placesService, walletService)
	recommendationHandler := handlers.NewRecommendationHandler(rewardsService, walletService, placesService, notificationRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	// Health check at the root
	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to CardGenius API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Card routes
	cards := api.Group("/cards")
	cards.Get("/", cardHandler.GetCards)
	cards.Post("/", cardHandler.AddCard)
	cards.Post("/scan", cardHandler.ScanCard)
	cards.Delete("/:id", cardHandler.DeleteCard)
	cards.Post("/:id/default", cardHandler.SetDefaultCard)

	// Bank routes (mocked linking)
	bank := api.Group("/bank")
	bank.Post("/connect", bankHandler.ConnectBank)
	bank.Get("/", bankHandler.GetBankConnection)

	// Location and nearby places
	api.Put("/location", locationHandler.UpdateLocation)
	api.Get("/places/nearby", placesHandler.GetNearbyPlaces)

	// Recommendation routes
	recommendations := api.Group("/recommendations")
	recommendations.Get("/", recommendationHandler.GetRecommendation)
	recommendations.Get("/nearby", recommendationHandler.GetNearbyRecommendations)

	// Notification routes
	notifications := api.Group("/notifications")
	notifications.Get("/", notificationHandler.GetNotifications)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
}
