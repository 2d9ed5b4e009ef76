package service

import (
	"errors"                     // Error inspection
	"recipe_api/internal/domain" // Domain models
	"strings"                    // Name whitespace check

	"gorm.io/gorm" // GORM ORM library
)

// UpdateTag renames the caller's tag. Renaming onto an existing (user, name)
// pair violates the unique index and is reported as a validation error.
func UpdateTag(db *gorm.DB, tagID, userID uint, name string) (*domain.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("name", "must not be empty")
	}
	var tag domain.Tag
	if err := db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tag.UserID != userID {
		return nil, ErrNotFound // Existence not disclosed to non-owners
	}
	if err := db.Model(&tag).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validationErr("name", "already exists")
		}
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes the caller's tag, detaching it from any recipes first
func DeleteTag(db *gorm.DB, tagID, userID uint) error {
	var tag domain.Tag
	if err := db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if tag.UserID != userID {
		return ErrNotFound
	}
	return db.Transaction(func(tx *gorm.DB) error {
		// Drop join rows so recipes keep their remaining tags intact
		if err := tx.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// UpdateIngredient mirrors UpdateTag for ingredients
func UpdateIngredient(db *gorm.DB, ingredientID, userID uint, name string) (*domain.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("name", "must not be empty")
	}
	var ingredient domain.Ingredient
	if err := db.First(&ingredient, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ingredient.UserID != userID {
		return nil, ErrNotFound
	}
	if err := db.Model(&ingredient).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validationErr("name", "already exists")
		}
		return nil, err
	}
	return &ingredient, nil
}

// DeleteIngredient mirrors DeleteTag for ingredients
func DeleteIngredient(db *gorm.DB, ingredientID, userID uint) error {
	var ingredient domain.Ingredient
	if err := db.First(&ingredient, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if ingredient.UserID != userID {
		return ErrNotFound
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", ingredient.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
}
