package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"` // "user", "admin"

	Timestamp
}
