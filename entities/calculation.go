package entities

import (
	"github.com/google/uuid"
)

// Calculation records one cooking event: which recipe was prepared, for how
// many servings, and the ingredients drawn from the user's inventory. The
// wasted portion starts at zero and is filled in later by the user.
type Calculation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RecipeID        uuid.UUID `json:"recipe_id"`
	Pax             int       `json:"pax"`
	IngredientsUsed string    `json:"ingredients_used" gorm:"type:text"`
	PortionWasted   float64   `json:"portion_wasted"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
