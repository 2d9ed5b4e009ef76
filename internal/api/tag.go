package api

import (
	"context"                     // Context for Redis operations
	"net/http"                    // HTTP status codes
	"recipe_api/internal/domain"  // Domain models
	"recipe_api/internal/service" // Core services
	"recipe_api/internal/utils"   // Utility functions
	"strconv"                     // Parameter parsing

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RenameRequest is the payload for renaming a tag or ingredient
type RenameRequest struct {
	Name string `json:"name" binding:"required"` // New name must be provided
}

// assignedOnly reads the ?assigned_only=0|1 query flag
func assignedOnly(c *gin.Context) bool {
	v := c.DefaultQuery("assigned_only", "0")
	return v == "1" || v == "true"
}

// pathID parses the :id path parameter for tag/ingredient routes
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// ListTagsHandler returns the caller's tags, optionally restricted to tags
// assigned to at least one recipe, read through the redis cache
func ListTagsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		assigned := assignedOnly(c)                       // Filter flag
		ctx := context.Background()                       // Context for Redis operations
		cacheKey := utils.TagListKey(userID, assigned)    // Per-user, per-flag cache key
		var tags []domain.Tag
		found, err := utils.GetCache(ctx, rdb, cacheKey, &tags)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"tags": tags, "cached": true})
			return
		}
		tags, err = service.ListTags(db, userID, assigned)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, tags, utils.ListingTTL)
		c.JSON(http.StatusOK, gin.H{"tags": tags, "cached": false})
	}
}

// UpdateTagHandler renames the caller's tag
func UpdateTagHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
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
		tag, err := service.UpdateTag(db, id, userID, req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateListings(context.Background(), rdb, userID) // Renames show in recipe listings too
		c.JSON(http.StatusOK, tag)
	}
}

// DeleteTagHandler deletes the caller's tag, detaching it from any recipes
func DeleteTagHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := service.DeleteTag(db, id, userID); err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateListings(context.Background(), rdb, userID)
		c.Status(http.StatusNoContent)
	}
}
