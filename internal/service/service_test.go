package service

import (
	"path/filepath"
	"testing"

	"recipe_api/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the full schema migrated.
// TranslateError is on, matching production, so unique-index violations map
// to gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Tag{}, &domain.Ingredient{}, &domain.Recipe{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Password: "hashed", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createRecipe(t *testing.T, db *gorm.DB, userID uint, title string) *domain.Recipe {
	t.Helper()
	recipe, err := CreateRecipe(db, userID, RecipeInput{
		Title:       title,
		TimeMinutes: 5,
		Price:       decimal.NewFromFloat(3.99),
	})
	require.NoError(t, err)
	return recipe
}

func tagCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&domain.Tag{}).Count(&count).Error)
	return count
}
