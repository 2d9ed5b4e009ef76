package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Cache key construction
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// ListingTTL is how long cached listing responses stay fresh
const ListingTTL = 60 * time.Second

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// RecipeListKey is the cache key for a user's recipe listing
func RecipeListKey(userID uint) string {
	return "recipes:user:" + strconv.Itoa(int(userID))
}

// TagListKey is the cache key for a user's tag listing for one filter flag
func TagListKey(userID uint, assignedOnly bool) string {
	return "tags:user:" + strconv.Itoa(int(userID)) + ":assigned:" + strconv.FormatBool(assignedOnly)
}

// IngredientListKey mirrors TagListKey for ingredients
func IngredientListKey(userID uint, assignedOnly bool) string {
	return "ingredients:user:" + strconv.Itoa(int(userID)) + ":assigned:" + strconv.FormatBool(assignedOnly)
}

// InvalidateListings drops every cached listing for a user. Recipe mutations
// can change tag/ingredient assignment, so all three listings go together.
func InvalidateListings(ctx context.Context, rdb *redis.Client, userID uint) {
	_ = DeleteCache(ctx, rdb, RecipeListKey(userID))
	for _, assigned := range []bool{false, true} {
		_ = DeleteCache(ctx, rdb, TagListKey(userID, assigned))
		_ = DeleteCache(ctx, rdb, IngredientListKey(userID, assigned))
	}
}
