package api

import (
	"context"                     // Context for Redis operations
	"net/http"                    // HTTP status codes
	"recipe_api/internal/domain"  // Domain models
	"recipe_api/internal/service" // Core services
	"recipe_api/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Fixed-point decimal for prices
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// NamedRef is a nested tag or ingredient payload carrying just a name
type NamedRef struct {
	Name string `json:"name" binding:"required"` // Name must be provided
}

// refNames flattens nested payloads into the name list the resolver expects
func refNames(refs []NamedRef) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return names
}

// CreateRecipeRequest is the payload for creating a recipe
type CreateRecipeRequest struct {
	Title       string          `json:"title" binding:"required"` // Title must be provided
	TimeMinutes uint            `json:"time_minutes"`             // Preparation time in minutes
	Price       decimal.Decimal `json:"price"`                    // Price, validated non-negative in the service
	Description string          `json:"description"`              // Optional description
	Link        string          `json:"link"`                     // Optional link
	Tags        []NamedRef      `json:"tags"`                     // Nested tag payloads
	Ingredients []NamedRef      `json:"ingredients"`              // Nested ingredient payloads
}

// UpdateRecipeRequest is the partial payload for PATCH. Absent fields stay
// untouched; a present tags/ingredients list replaces the whole set, so an
// explicit empty list clears it.
type UpdateRecipeRequest struct {
	Title       *string          `json:"title"`
	TimeMinutes *uint            `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link"`
	Tags        *[]NamedRef      `json:"tags"`
	Ingredients *[]NamedRef      `json:"ingredients"`
}

// CreateRecipeHandler creates a recipe with its nested tags and ingredients
func CreateRecipeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		var req CreateRecipeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		recipe, err := service.CreateRecipe(db, userID, service.RecipeInput{
			Title:           req.Title,                 // Recipe title
			TimeMinutes:     req.TimeMinutes,           // Preparation time
			Price:           req.Price,                 // Price
			Description:     req.Description,           // Optional description
			Link:            req.Link,                  // Optional link
			TagNames:        refNames(req.Tags),        // Nested tag names
			IngredientNames: refNames(req.Ingredients), // Nested ingredient names
		})
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,    // Owner
			"recipe_id": recipe.ID, // New recipe ID
		}).Info("Recipe created") // Log creation
		utils.InvalidateListings(context.Background(), rdb, userID) // Listings are stale now
		c.JSON(http.StatusCreated, recipe)
	}
}

// ListRecipesHandler returns the caller's recipes, newest first, read through
// the per-user redis cache
func ListRecipesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		ctx := context.Background()             // Context for Redis operations
		cacheKey := utils.RecipeListKey(userID) // Cache key for this user's listing
		var recipes []domain.Recipe
		found, err := utils.GetCache(ctx, rdb, cacheKey, &recipes)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"recipes": recipes, "cached": true})
			return
		}
		recipes, err = service.ListRecipes(db, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, recipes, utils.ListingTTL) // Cache for later requests
		c.JSON(http.StatusOK, gin.H{"recipes": recipes, "cached": false})
	}
}

// GetRecipeHandler returns one of the caller's recipes
func GetRecipeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		recipe, err := service.GetRecipe(db, id, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

// UpdateRecipeHandler applies a partial update to the caller's recipe
func UpdateRecipeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req UpdateRecipeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		patch := service.RecipePatch{
			Title:       req.Title,
			TimeMinutes: req.TimeMinutes,
			Price:       req.Price,
			Description: req.Description,
			Link:        req.Link,
		}
		if req.Tags != nil {
			names := refNames(*req.Tags) // Present list replaces the whole set
			patch.TagNames = &names
		}
		if req.Ingredients != nil {
			names := refNames(*req.Ingredients)
			patch.IngredientNames = &names
		}
		recipe, err := service.UpdateRecipe(db, id, userID, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   userID, // Owner
			"recipe_id": id,     // Updated recipe ID
		}).Info("Recipe updated") // Log update
		utils.InvalidateListings(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, recipe)
	}
}

// DeleteRecipeHandler deletes the caller's recipe, detaching but keeping its
// tags and ingredients
func DeleteRecipeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.DeleteRecipe(db, id, userID); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   userID, // Owner
			"recipe_id": id,     // Deleted recipe ID
		}).Info("Recipe deleted") // Log deletion
		utils.InvalidateListings(context.Background(), rdb, userID)
		c.Status(http.StatusNoContent)
	}
}
