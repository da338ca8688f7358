// @title Reportes de Ventas API
// @version 1.0
// @description Backend API for the retail sales analytics dashboard
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	_ "github.com/jupabego97/reportes-react-sub000/docs"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/routes"
	"github.com/jupabego97/reportes-react-sub000/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize JWT Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Query cache and filter store share the Redis backend
	store := cache.NewRedisStore(config.RedisClient)
	cache.InitQueryCache(store)
	services.InitFilterStore(store)
	log.Println("✅ Query cache initialized")

	// ✅ Configure CORS for all content types including file downloads
	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public auth routes (login issues the cookie the rest depends on)
	routes.SetupAuthRoutes(api)

	// ✅ Everything else requires auth, carries the active filter set and is rate limited
	protected := api.Group("")
	protected.Use(middleware.RateLimiter(100, time.Minute))
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.FilterMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())

	routes.SetupFilterRoutes(protected)
	routes.SetupDashboardRoutes(protected)
	routes.SetupAnalysisRoutes(protected)
	routes.SetupPurchasingRoutes(protected)
	routes.SetupSellerRoutes(protected)
	routes.SetupProviderRoutes(protected)
	routes.SetupInventoryRoutes(protected)
	routes.SetupExportRoutes(protected)
	log.Println("✅ API routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}
