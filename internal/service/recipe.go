package service

import (
	"errors"                     // Error inspection
	"recipe_api/internal/domain" // Domain models
	"strings"                    // Title whitespace check

	"github.com/shopspring/decimal" // Fixed-point decimal for prices
	"gorm.io/gorm"                  // GORM ORM library
)

// RecipeInput carries the fields for a new recipe
type RecipeInput struct {
	Title           string          // Required, non-empty
	TimeMinutes     uint            // Preparation time in minutes
	Price           decimal.Decimal // Non-negative
	Description     string          // Optional
	Link            string          // Optional
	TagNames        []string        // Resolved per-user via ResolveTags
	IngredientNames []string        // Resolved per-user via ResolveIngredients
}

// RecipePatch carries a partial update. Nil pointers mean "leave untouched";
// a non-nil Tags/Ingredients pointer replaces the whole set, so an explicit
// empty list clears it.
type RecipePatch struct {
	Title           *string
	TimeMinutes     *uint
	Price           *decimal.Decimal
	Description     *string
	Link            *string
	TagNames        *[]string
	IngredientNames *[]string
}

// CreateRecipe persists a recipe owned by userID and attaches its resolved
// tags and ingredients inside a single transaction.
func CreateRecipe(db *gorm.DB, userID uint, in RecipeInput) (*domain.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if in.Price.IsNegative() {
		return nil, validationErr("price", "must not be negative")
	}
	recipe := domain.Recipe{
		UserID:      userID,         // Owner, immutable after creation
		Title:       in.Title,       // Recipe title
		TimeMinutes: in.TimeMinutes, // Preparation time
		Price:       in.Price,       // Price
		Description: in.Description, // Optional description
		Link:        in.Link,        // Optional link
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err // Rollback on creation failure
		}
		tags, err := ResolveTags(tx, userID, in.TagNames)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&recipe).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		ingredients, err := ResolveIngredients(tx, userID, in.IngredientNames)
		if err != nil {
			return err
		}
		if len(ingredients) > 0 {
			if err := tx.Model(&recipe).Association("Ingredients").Append(&ingredients); err != nil {
				return err
			}
		}
		return nil // Commit
	})
	if err != nil {
		return nil, err
	}
	return GetRecipe(db, recipe.ID, userID) // Return the assembled recipe
}

// UpdateRecipe applies a partial update to the caller's recipe. A recipe
// owned by someone else is reported as not found rather than forbidden, so
// existence is not disclosed to non-owners.
func UpdateRecipe(db *gorm.DB, recipeID, userID uint, patch RecipePatch) (*domain.Recipe, error) {
	recipe, err := ownedRecipe(db, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, validationErr("price", "must not be negative")
	}
	// Scalar updates and set replacement happen in one transaction so a
	// reader never observes a partially-cleared tag or ingredient set.
	err = db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.TimeMinutes != nil {
			updates["time_minutes"] = *patch.TimeMinutes
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Link != nil {
			updates["link"] = *patch.Link
		}
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		if patch.TagNames != nil {
			if err := replaceTags(tx, recipe, userID, *patch.TagNames); err != nil {
				return err
			}
		}
		if patch.IngredientNames != nil {
			if err := replaceIngredients(tx, recipe, userID, *patch.IngredientNames); err != nil {
				return err
			}
		}
		return nil // Commit
	})
	if err != nil {
		return nil, err
	}
	return GetRecipe(db, recipeID, userID)
}

// DeleteRecipe removes the caller's recipe. Tags and ingredients are merely
// detached; they stay owned by the user until deleted explicitly.
func DeleteRecipe(db *gorm.DB, recipeID, userID uint) error {
	recipe, err := ownedRecipe(db, recipeID, userID)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

// ownedRecipe loads a recipe and enforces ownership as not-found
func ownedRecipe(db *gorm.DB, recipeID, userID uint) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

// replaceTags clears the recipe's tag set and repopulates it from names
func replaceTags(tx *gorm.DB, recipe *domain.Recipe, userID uint, names []string) error {
	tags, err := ResolveTags(tx, userID, names)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return tx.Model(recipe).Association("Tags").Clear() // Explicit empty list clears all
	}
	return tx.Model(recipe).Association("Tags").Replace(&tags)
}

// replaceIngredients mirrors replaceTags for ingredients
func replaceIngredients(tx *gorm.DB, recipe *domain.Recipe, userID uint, names []string) error {
	ingredients, err := ResolveIngredients(tx, userID, names)
	if err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return tx.Model(recipe).Association("Ingredients").Clear()
	}
	return tx.Model(recipe).Association("Ingredients").Replace(&ingredients)
}
