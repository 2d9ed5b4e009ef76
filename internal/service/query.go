package service

import (
	"errors"                     // Error inspection
	"recipe_api/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// ListRecipes returns the user's recipes, most recently created first,
// with tags and ingredients preloaded.
func ListRecipes(db *gorm.DB, userID uint) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	err := db.Where("user_id = ?", userID).
		Order("id desc").
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).Error
	return recipes, err
}

// GetRecipe returns one of the user's recipes with its relations preloaded.
// Another user's recipe is reported as not found.
func GetRecipe(db *gorm.DB, recipeID, userID uint) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := db.Preload("Tags").Preload("Ingredients").First(&recipe, recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

// ListTags returns the user's tags ordered by name descending. With
// assignedOnly, only tags attached to at least one of the user's recipes are
// returned; the join yields one row per recipe link, so DISTINCT collapses a
// tag attached to several recipes into a single result.
func ListTags(db *gorm.DB, userID uint, assignedOnly bool) ([]domain.Tag, error) {
	query := db.Model(&domain.Tag{}).Where("tags.user_id = ?", userID)
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Joins("JOIN recipes ON recipes.id = recipe_tags.recipe_id AND recipes.user_id = ?", userID).
			Distinct()
	}
	var tags []domain.Tag
	err := query.Order("tags.name desc").Find(&tags).Error
	return tags, err
}

// ListIngredients mirrors ListTags for ingredients
func ListIngredients(db *gorm.DB, userID uint, assignedOnly bool) ([]domain.Ingredient, error) {
	query := db.Model(&domain.Ingredient{}).Where("ingredients.user_id = ?", userID)
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.user_id = ?", userID).
			Distinct()
	}
	var ingredients []domain.Ingredient
	err := query.Order("ingredients.name desc").Find(&ingredients).Error
	return ingredients, err
}
