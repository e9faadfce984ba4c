package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/mafalia/teranga-network/config"
	"github.com/mafalia/teranga-network/controllers"
	"github.com/mafalia/teranga-network/middleware"
	"github.com/mafalia/teranga-network/routes"
	"github.com/mafalia/teranga-network/scoring"
	"github.com/mafalia/teranga-network/services"
	"github.com/mafalia/teranga-network/storage"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis (optional; the leaderboard falls back to live reads)
	redisClient := config.ConnectRedis()
	defer config.CloseRedis()

	// Connect to database
	client := config.ConnectDB()
	db := client.Database(config.DatabaseName())

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"}, // Configure this based on your needs
		AllowInlineJS:  true,          // Set to false in production
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Mafalia Teranga Network backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize storage and the scoring engine
	store := storage.New(db)
	engine := scoring.NewEngine(scoring.DefaultConfig())

	// Initialize services
	statsService := services.NewStatsService(store)
	scoreService := services.NewScoreService(store, statsService, engine)
	commissionService := services.NewCommissionService(store)
	leaderboardService := services.NewLeaderboardService(store, statsService, engine, redisClient)
	certificationService := services.NewCertificationService(store)

	// Initialize controllers and register routes
	routes.SetupRoutes(e, routes.Controllers{
		Auth:          controllers.NewAuthController(store),
		Client:        controllers.NewClientController(store),
		Order:         controllers.NewOrderController(store),
		Commission:    controllers.NewCommissionController(store, commissionService),
		Partner:       controllers.NewPartnerController(store, statsService, scoreService),
		Leaderboard:   controllers.NewLeaderboardController(leaderboardService),
		Certification: controllers.NewCertificationController(certificationService),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
