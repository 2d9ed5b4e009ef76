package service

import (
	"errors"                   // Error inspection
	"recipe_api/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// ResolveTags maps each name to the user's tag with that name, creating
// missing ones. The result preserves the order and duplicates of the input.
// Resolving an already-existing name is the common case, not an error.
func ResolveTags(db *gorm.DB, userID uint, names []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		tag, err := getOrCreateTag(db, userID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ResolveIngredients is the ingredient counterpart of ResolveTags
func ResolveIngredients(db *gorm.DB, userID uint, names []string) ([]domain.Ingredient, error) {
	ingredients := make([]domain.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient, err := getOrCreateIngredient(db, userID, name)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// getOrCreateTag finds the (user, name) tag or inserts it. The composite
// unique index is the arbiter for concurrent creates: if our insert loses
// the race, reload the winning row instead of failing.
func getOrCreateTag(db *gorm.DB, userID uint, name string) (domain.Tag, error) {
	var tag domain.Tag
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err == nil {
		return tag, nil // Existing tag, reuse it
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Tag{}, err
	}
	tag = domain.Tag{UserID: userID, Name: name}
	err = db.Create(&tag).Error
	if err == nil {
		return tag, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent request inserted the same (user, name) first
		var existing domain.Tag
		if err := db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error; err != nil {
			return domain.Tag{}, err
		}
		return existing, nil
	}
	return domain.Tag{}, err
}

// getOrCreateIngredient mirrors getOrCreateTag for ingredients
func getOrCreateIngredient(db *gorm.DB, userID uint, name string) (domain.Ingredient, error) {
	var ingredient domain.Ingredient
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&ingredient).Error
	if err == nil {
		return ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Ingredient{}, err
	}
	ingredient = domain.Ingredient{UserID: userID, Name: name}
	err = db.Create(&ingredient).Error
	if err == nil {
		return ingredient, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing domain.Ingredient
		if err := db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error; err != nil {
			return domain.Ingredient{}, err
		}
		return existing, nil
	}
	return domain.Ingredient{}, err
}
