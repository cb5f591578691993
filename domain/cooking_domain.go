package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	MessageSuccessCookRecipe        = "cooking process completed"
	MessageSuccessRecordWaste       = "waste recorded successfully"
	MessageSuccessGetCookingHistory = "cooking history retrieved successfully"

	MessageFailedCookRecipe        = "failed to save cooking data"
	MessageFailedRecordWaste       = "failed to update waste data"
	MessageFailedGetCookingHistory = "failed to retrieve cooking history"

	ErrCalculationNotFound = errors.New("calculation not found")
	ErrInvalidWastePortion = errors.New("invalid or missing portion wasted value")
)

// IngredientQuantity decodes from a JSON number or a numeric string. An
// unparseable value becomes NaN instead of a decode error, so one bad
// quantity is skipped at reconciliation time and never rejects the whole
// cook request.
type IngredientQuantity float64

func (q *IngredientQuantity) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*q = IngredientQuantity(math.NaN())
		return nil
	}
	*q = IngredientQuantity(value)
	return nil
}

func (q IngredientQuantity) MarshalJSON() ([]byte, error) {
	value := float64(q)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(value)
}

type (
	IngredientUsed struct {
		IngredientName     string             `json:"ingredient_name"`
		IngredientQuantity IngredientQuantity `json:"ingredient_quantity"`
		IngredientUnit     string             `json:"ingredient_unit"`
	}

	CookRequest struct {
		RecipeID        string           `json:"recipe_id" validate:"required,uuid"`
		Pax             int              `json:"pax" validate:"required,min=1"`
		IngredientsUsed []IngredientUsed `json:"ingredients_used" validate:"required,min=1"`
	}

	CookResponse struct {
		CalculationID string `json:"calculation_id"`
	}

	RecordWasteRequest struct {
		PortionWasted float64 `json:"portion_wasted" validate:"gte=0"`
	}

	CookingHistoryResponse struct {
		CalculationID   string           `json:"calculation_id"`
		RecipeID        string           `json:"recipe_id"`
		Pax             int              `json:"pax"`
		IngredientsUsed []IngredientUsed `json:"ingredients_used"`
		PortionWasted   float64          `json:"portion_wasted"`
		CreatedAt       time.Time        `json:"created_at"`
	}
)
