package service

import (
	"testing"

	"recipe_api/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string            { return &s }
func namesPtr(names ...string) *[]string { return &names }

func TestCreateRecipeWithNewTag(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")

	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:       "Soup",
		TimeMinutes: 5,
		Price:       decimal.NewFromFloat(3.99),
		TagNames:    []string{"Spicy"},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, recipe.UserID)
	assert.Equal(t, "Soup", recipe.Title)
	assert.True(t, recipe.Price.Equal(decimal.NewFromFloat(3.99)))
	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, "Spicy", recipe.Tags[0].Name)
	assert.Equal(t, user.ID, recipe.Tags[0].UserID) // Created fresh for the owner
	assert.Empty(t, recipe.Ingredients)
}

func TestCreateRecipeReusesExistingTag(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")
	existing := domain.Tag{UserID: user.ID, Name: "Vegan"}
	require.NoError(t, db.Create(&existing).Error)

	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:    "Salad",
		Price:    decimal.NewFromInt(2),
		TagNames: []string{"Vegan"},
	})
	require.NoError(t, err)

	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, existing.ID, recipe.Tags[0].ID)
	assert.EqualValues(t, 1, tagCount(t, db))
}

func TestCreateRecipeValidatesFields(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")

	_, err := CreateRecipe(db, user.ID, RecipeInput{Title: "   "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = CreateRecipe(db, user.ID, RecipeInput{
		Title: "Soup",
		Price: decimal.NewFromFloat(-1),
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	// No partial writes on validation failure
	var count int64
	require.NoError(t, db.Model(&domain.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateRecipePartialScalars(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")
	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:       "Soup",
		TimeMinutes: 5,
		Price:       decimal.NewFromFloat(3.99),
		Description: "Warm",
		TagNames:    []string{"Spicy"},
	})
	require.NoError(t, err)

	updated, err := UpdateRecipe(db, recipe.ID, user.ID, RecipePatch{Title: strPtr("Stew")})
	require.NoError(t, err)

	// Only title changed; everything else, tags included, is untouched
	assert.Equal(t, "Stew", updated.Title)
	assert.EqualValues(t, 5, updated.TimeMinutes)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(3.99)))
	assert.Equal(t, "Warm", updated.Description)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "Spicy", updated.Tags[0].Name)
}

func TestUpdateRecipeEmptyTagListClears(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")
	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:    "Soup",
		Price:    decimal.NewFromInt(3),
		TagNames: []string{"Spicy", "Dinner"},
	})
	require.NoError(t, err)

	updated, err := UpdateRecipe(db, recipe.ID, user.ID, RecipePatch{TagNames: namesPtr()})
	require.NoError(t, err)

	assert.Empty(t, updated.Tags)
	// Detached, not deleted: the tag rows survive for the owner
	assert.EqualValues(t, 2, tagCount(t, db))
}

func TestUpdateRecipeReplacesTagSet(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")
	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:    "Soup",
		Price:    decimal.NewFromInt(3),
		TagNames: []string{"Spicy"},
	})
	require.NoError(t, err)

	updated, err := UpdateRecipe(db, recipe.ID, user.ID, RecipePatch{TagNames: namesPtr("Vegan", "Dinner")})
	require.NoError(t, err)

	names := make([]string, len(updated.Tags))
	for i, tag := range updated.Tags {
		names[i] = tag.Name
	}
	assert.ElementsMatch(t, []string{"Vegan", "Dinner"}, names)
}

func TestUpdateRecipeExtendsIngredients(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")
	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:           "Salad",
		Price:           decimal.NewFromInt(2),
		IngredientNames: []string{"Kale"},
	})
	require.NoError(t, err)
	kaleID := recipe.Ingredients[0].ID

	updated, err := UpdateRecipe(db, recipe.ID, user.ID, RecipePatch{
		IngredientNames: namesPtr("Kale", "Basil"),
	})
	require.NoError(t, err)

	require.Len(t, updated.Ingredients, 2)
	ids := map[string]uint{}
	for _, ingredient := range updated.Ingredients {
		ids[ingredient.Name] = ingredient.ID
	}
	assert.Equal(t, kaleID, ids["Kale"]) // Reused, not duplicated
	assert.Contains(t, ids, "Basil")
}

func TestUpdateRecipeForeignOwner(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	recipe := createRecipe(t, db, alice.ID, "Soup")

	_, err := UpdateRecipe(db, recipe.ID, bob.ID, RecipePatch{Title: strPtr("Stolen")})
	require.ErrorIs(t, err, ErrNotFound) // Existence is not disclosed

	// No mutation happened
	reloaded, err := GetRecipe(db, recipe.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", reloaded.Title)
}

func TestUpdateRecipeMissing(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")

	_, err := UpdateRecipe(db, 9999, user.ID, RecipePatch{Title: strPtr("Ghost")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecipeDetachesWithoutDeletingTags(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")
	recipe, err := CreateRecipe(db, user.ID, RecipeInput{
		Title:           "Soup",
		Price:           decimal.NewFromInt(3),
		TagNames:        []string{"Spicy"},
		IngredientNames: []string{"Kale"},
	})
	require.NoError(t, err)

	require.NoError(t, DeleteRecipe(db, recipe.ID, user.ID))

	_, err = GetRecipe(db, recipe.ID, user.ID)
	require.ErrorIs(t, err, ErrNotFound)
	// Shared tags and ingredients persist until deleted explicitly
	assert.EqualValues(t, 1, tagCount(t, db))
	var ingredientCount int64
	require.NoError(t, db.Model(&domain.Ingredient{}).Count(&ingredientCount).Error)
	assert.EqualValues(t, 1, ingredientCount)
}

func TestDeleteRecipeForeignOwner(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	recipe := createRecipe(t, db, alice.ID, "Soup")

	require.ErrorIs(t, DeleteRecipe(db, recipe.ID, bob.ID), ErrNotFound)

	_, err := GetRecipe(db, recipe.ID, alice.ID)
	require.NoError(t, err) // Still there
}
