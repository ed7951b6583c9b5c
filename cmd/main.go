package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/franciscocavallaro/asado-counter/docs" // Import generated docs
	"github.com/franciscocavallaro/asado-counter/internal/config"
	"github.com/franciscocavallaro/asado-counter/internal/controllers"
	"github.com/franciscocavallaro/asado-counter/internal/database"
	"github.com/franciscocavallaro/asado-counter/internal/middleware"
	"github.com/franciscocavallaro/asado-counter/internal/services"
)

var (
	db                *gorm.DB
	catalogService    services.CatalogService
	asadoService      services.AsadoService
	statsService      services.StatsService
	barcodeService    services.BarcodeService
	asadoController   controllers.AsadoController
	catalogController controllers.CatalogController
	statsController   controllers.StatsController
	barcodeController controllers.BarcodeController
	configuration     *config.Config
)

// @title Asado Counter API
// @version 1.0
// @description Personal tracker for asado events with yearly wrapped stats
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	catalogService = services.NewCatalogService(db)
	asadoService = services.NewAsadoService(db, catalogService)
	statsService = services.NewStatsService(db)
	barcodeService = services.NewBarcodeService(db)

	asadoController = controllers.NewAsadoController(asadoService)
	catalogController = controllers.NewCatalogController(catalogService)
	statsController = controllers.NewStatsController(statsService)
	barcodeController = controllers.NewBarcodeController(barcodeService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema
// and seeds the barcode table when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(conf.DatabaseConfig())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedBarcodes(db))

	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/asados", asadoController.GetAllAsados)
		v1.GET("/asados/:id", asadoController.GetAsadoByID)
		v1.POST("/asados", asadoController.CreateAsado)
		v1.PUT("/asados/:id", asadoController.UpdateAsado)
		v1.DELETE("/asados/:id", asadoController.DeleteAsado)

		v1.GET("/cuts", catalogController.GetCuts)
		v1.GET("/guests", catalogController.GetGuests)

		v1.GET("/wrapped", statsController.GetWrapped)

		v1.GET("/barcodes/:code", barcodeController.GetBarcode)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "asado-counter",
	})
}
