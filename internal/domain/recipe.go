package domain

import (
	"github.com/shopspring/decimal" // Fixed-point decimal for prices
)

// Recipe Model
type Recipe struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                             // Primary key, creation order
	UserID      uint            `gorm:"not null;index" json:"user_id"`                    // Foreign key to the owning User, immutable after creation
	Title       string          `gorm:"not null" json:"title"`                            // Recipe title
	TimeMinutes uint            `json:"time_minutes"`                                     // Preparation time in minutes
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`                  // Price, non-negative fixed point
	Description string          `json:"description"`                                      // Optional free-form description
	Link        string          `json:"link"`                                             // Optional external URL
	CreatedAt   int64           `gorm:"autoCreateTime:milli" json:"created_at"`           // Timestamp of creation in milliseconds
	Tags        []Tag           `gorm:"many2many:recipe_tags;" json:"tags"`               // Many-to-many relationship with Tag
	Ingredients []Ingredient    `gorm:"many2many:recipe_ingredients;" json:"ingredients"` // Many-to-many relationship with Ingredient
}
