package api

import (
	"context"                     // Context for Redis operations
	"net/http"                    // HTTP status codes
	"recipe_api/internal/domain"  // Domain models
	"recipe_api/internal/service" // Core services
	"recipe_api/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// ListIngredientsHandler mirrors ListTagsHandler for ingredients
func ListIngredientsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		assigned := assignedOnly(c)                           // Filter flag
		ctx := context.Background()                           // Context for Redis operations
		cacheKey := utils.IngredientListKey(userID, assigned) // Per-user, per-flag cache key
		var ingredients []domain.Ingredient
		found, err := utils.GetCache(ctx, rdb, cacheKey, &ingredients)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"ingredients": ingredients, "cached": true})
			return
		}
		ingredients, err = service.ListIngredients(db, userID, assigned)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, ingredients, utils.ListingTTL)
		c.JSON(http.StatusOK, gin.H{"ingredients": ingredients, "cached": false})
	}
}

// UpdateIngredientHandler renames the caller's ingredient
func UpdateIngredientHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req RenameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ingredient, err := service.UpdateIngredient(db, id, userID, req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateListings(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, ingredient)
	}
}

// DeleteIngredientHandler deletes the caller's ingredient
func DeleteIngredientHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.DeleteIngredient(db, id, userID); err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateListings(context.Background(), rdb, userID)
		c.Status(http.StatusNoContent)
	}
}
