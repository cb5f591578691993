package recipe

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"grocery-tracker/domain"
	"grocery-tracker/entities"
	"grocery-tracker/pkg/grocery"
)

type (
	RecipeService interface {
		GetRecommendations(ctx context.Context, userID string) ([]domain.RecommendedRecipe, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		groceryRepository grocery.GroceryRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, groceryRepository grocery.GroceryRepository) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		groceryRepository: groceryRepository,
	}
}

// GetRecommendations returns the recipes the user could cook right now:
// every ingredient must match an in-stock grocery by case-insensitive name
// with enough quantity on hand.
func (s *recipeService) GetRecommendations(ctx context.Context, userID string) ([]domain.RecommendedRecipe, error) {
	groceries, err := s.groceryRepository.GetInStockByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	recommended := make([]domain.RecommendedRecipe, 0)
	for _, recipe := range recipes {
		matched, ok := matchRecipe(recipe, groceries)
		if !ok {
			continue
		}

		recommended = append(recommended, domain.RecommendedRecipe{
			RecipeID:            recipe.ID.String(),
			RecipeName:          strings.TrimSpace(recipe.Name),
			CookingTime:         recipe.CookingTime,
			Steps:               recipe.Steps,
			SustainabilityNotes: recipe.SustainabilityNotes,
			GroceryMatched:      matched,
		})
	}

	return recommended, nil
}

func matchRecipe(recipe *entities.Recipe, groceries []*entities.Grocery) ([]domain.MatchedIngredient, bool) {
	var ingredients []domain.RecipeIngredient
	if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
		log.Printf("Failed to parse ingredients for recipe %s: %v", recipe.ID, err)
		return nil, false
	}

	if len(ingredients) == 0 {
		return nil, false
	}

	matched := make([]domain.MatchedIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		name := strings.ToLower(strings.TrimSpace(ingredient.Item))
		if name == "" {
			return nil, false
		}

		var available *entities.Grocery
		for _, row := range groceries {
			if strings.ToLower(strings.TrimSpace(row.Name)) == name {
				available = row
				break
			}
		}

		if available == nil || available.Quantity < ingredient.Quantity {
			return nil, false
		}

		matched = append(matched, domain.MatchedIngredient{
			IngredientName:     ingredient.Item,
			IngredientQuantity: ingredient.Quantity,
			AvailableQuantity:  available.Quantity,
			IngredientUnit:     ingredient.Unit,
		})
	}

	return matched, true
}
