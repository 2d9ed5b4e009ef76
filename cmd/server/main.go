package main

import (
	"context"                        // context package is needed for Redis operations
	"log"                            // log package is needed for logging
	"recipe_api/internal/api"        // Custom package for API handlers
	"recipe_api/internal/config"     // Custom package for configuration
	"recipe_api/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database.
	// TranslateError maps driver duplicate-key errors onto gorm.ErrDuplicatedKey,
	// which the tag/ingredient resolver relies on for its get-or-create race.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client for listing caches
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret) // Shared auth middleware

	// User routes
	r.POST("/user", api.RegisterHandler(db))                               // Registration endpoint
	r.POST("/user/login", api.LoginHandler(db, cfg.JWTSecret, cfg.TokenTTL)) // Login endpoint
	me := r.Group("/user/me", auth)                                        // Profile endpoints
	me.GET("", api.MeHandler(db))                                          // Current profile
	me.PATCH("", api.UpdateMeHandler(db))                                  // Profile update

	// Recipe routes (protected by JWT)
	recipes := r.Group("/recipes", auth)
	recipes.POST("", api.CreateRecipeHandler(db, redisClient))       // Create recipe endpoint
	recipes.GET("", api.ListRecipesHandler(db, redisClient))         // List recipes endpoint
	recipes.GET("/:id", api.GetRecipeHandler(db))                    // Recipe detail endpoint
	recipes.PATCH("/:id", api.UpdateRecipeHandler(db, redisClient))  // Partial update endpoint
	recipes.DELETE("/:id", api.DeleteRecipeHandler(db, redisClient)) // Delete recipe endpoint

	// Tag routes (protected by JWT)
	tags := r.Group("/tags", auth)
	tags.GET("", api.ListTagsHandler(db, redisClient))         // List tags endpoint, supports ?assigned_only=1
	tags.PATCH("/:id", api.UpdateTagHandler(db, redisClient))  // Rename tag endpoint
	tags.DELETE("/:id", api.DeleteTagHandler(db, redisClient)) // Delete tag endpoint

	// Ingredient routes (protected by JWT)
	ingredients := r.Group("/ingredients", auth)
	ingredients.GET("", api.ListIngredientsHandler(db, redisClient))         // List ingredients endpoint
	ingredients.PATCH("/:id", api.UpdateIngredientHandler(db, redisClient))  // Rename ingredient endpoint
	ingredients.DELETE("/:id", api.DeleteIngredientHandler(db, redisClient)) // Delete ingredient endpoint

	// Admin routes (protected, staff only)
	admin := r.Group("/admin", auth, middleware.StaffOnlyMiddleware(db))
	admin.GET("/users", api.ListUsersHandler(db, redisClient)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
