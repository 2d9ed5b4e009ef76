package domain

// Ingredient Model
type Ingredient struct {
	ID     uint   `gorm:"primaryKey" json:"id"`                                          // Primary key
	UserID uint   `gorm:"not null;uniqueIndex:idx_ingredients_user_name" json:"user_id"` // Foreign key to the owning User
	Name   string `gorm:"not null;uniqueIndex:idx_ingredients_user_name" json:"name"`    // Ingredient name, unique per user
}
