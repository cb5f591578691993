package entities

import (
	"time"

	"github.com/google/uuid"
)

type Grocery struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"` // canonical, stored lowercase
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	Price          float64    `json:"price"`
	DateOfPurchase time.Time  `json:"date_of_purchase"`
	DateOfExpiry   *time.Time `json:"date_of_expiry,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
