package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	CookingTime         string    `json:"cooking_time"`
	Steps               string    `json:"steps" gorm:"type:text"`
	SustainabilityNotes string    `json:"sustainability_notes"`
	Ingredients         string    `json:"ingredients" gorm:"type:text"` // JSON array of {item, quantity, unit}

	Timestamp
}
