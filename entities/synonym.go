package entities

import (
	"github.com/google/uuid"
)

// GroceryItem is an admin-managed dictionary entry mapping aliases seen on
// receipts to a single canonical grocery name. Synonyms is a JSON-encoded
// array of strings.
type GroceryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CommonName string    `gorm:"uniqueIndex" json:"common_name"`
	Synonyms   string    `json:"synonyms" gorm:"type:text"`

	Timestamp
}
