package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodWaste is one weekly aggregation row written by the waste tracker job.
type FoodWaste struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WeekOf time.Time `gorm:"type:timestamp" json:"week_of"`
	Wasted float64   `json:"wasted"`
	Saved  float64   `json:"saved"`

	Timestamp
}
