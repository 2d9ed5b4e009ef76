package domain

// Tag Model
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID uint   `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"user_id"` // Foreign key to the owning User
	Name   string `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"name"`    // Tag name, unique per user
}
