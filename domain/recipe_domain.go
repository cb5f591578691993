package domain

import "errors"

var (
	MessageSuccessGetRecommendations = "recipe recommendations retrieved successfully"

	MessageFailedGetRecommendations = "failed to retrieve recipe recommendations"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeIngredient struct {
		Item     string  `json:"item"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	MatchedIngredient struct {
		IngredientName     string  `json:"ingredient_name"`
		IngredientQuantity float64 `json:"ingredient_quantity"`
		AvailableQuantity  float64 `json:"available_quantity"`
		IngredientUnit     string  `json:"ingredient_unit"`
	}

	RecommendedRecipe struct {
		RecipeID            string              `json:"recipe_id"`
		RecipeName          string              `json:"recipe_name"`
		CookingTime         string              `json:"cooking_time"`
		Steps               string              `json:"steps"`
		SustainabilityNotes string              `json:"sustainability_notes"`
		GroceryMatched      []MatchedIngredient `json:"grocery_matched"`
	}
)
