package domain

// User Model
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`              // Primary key
	Email       string `gorm:"unique;not null" json:"email"`      // Unique email, domain part lowercased on registration
	Password    string `gorm:"not null" json:"-"`                 // Hashed password, never serialized
	Name        string `json:"name"`                              // Display name
	IsStaff     bool   `gorm:"default:false" json:"is_staff"`     // Staff flag, grants admin listing access
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"` // Superuser flag, implies staff privileges
}
