package cooking

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strings"

	"grocery-tracker/domain"
	"grocery-tracker/entities"
	"grocery-tracker/pkg/grocery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookingService interface {
		CookRecipe(ctx context.Context, req domain.CookRequest, userID string) (domain.CookResponse, error)
		RecordWaste(ctx context.Context, calculationID string, req domain.RecordWasteRequest) error
		GetCookingHistory(ctx context.Context, userID string) ([]domain.CookingHistoryResponse, error)
	}

	cookingService struct {
		cookingRepository CookingRepository
		groceryRepository grocery.GroceryRepository
	}
)

func NewCookingService(cookingRepository CookingRepository, groceryRepository grocery.GroceryRepository) CookingService {
	return &cookingService{
		cookingRepository: cookingRepository,
		groceryRepository: groceryRepository,
	}
}

// CookRecipe reconciles the ingredients used against the user's inventory and
// records the cooking event. Ingredients are processed sequentially in the
// order supplied; a malformed or missing ingredient is logged and skipped and
// never aborts the rest of the batch.
func (s *cookingService) CookRecipe(ctx context.Context, req domain.CookRequest, userID string) (domain.CookResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CookResponse{}, domain.ErrParseUUID
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.CookResponse{}, domain.ErrParseUUID
	}

	for _, ingredient := range req.IngredientsUsed {
		name := strings.TrimSpace(ingredient.IngredientName)
		quantity := float64(ingredient.IngredientQuantity)

		if name == "" || ingredient.IngredientUnit == "" || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			log.Printf("Invalid ingredient, skipping: %+v", ingredient)
			continue
		}

		formattedName := strings.ToLower(name)

		row, err := s.groceryRepository.FindByNameForUser(ctx, userID, formattedName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Grocery not found for ingredient: %s", formattedName)
			} else {
				log.Printf("Error fetching grocery %q: %v", formattedName, err)
			}
			continue
		}

		newQuantity := row.Quantity - quantity

		if newQuantity <= 0 {
			if err := s.groceryRepository.DeleteGrocery(ctx, row.ID.String(), userID); err != nil {
				log.Printf("Error deleting grocery %q: %v", formattedName, err)
			} else {
				log.Printf("Deleted %s (quantity reached 0)", formattedName)
			}
		} else {
			if err := s.groceryRepository.UpdateQuantity(ctx, row.ID.String(), newQuantity); err != nil {
				log.Printf("Error updating grocery quantity for %q: %v", formattedName, err)
			} else {
				log.Printf("Updated %s: %g -> %g", formattedName, row.Quantity, newQuantity)
			}
		}
	}

	payload, err := json.Marshal(req.IngredientsUsed)
	if err != nil {
		return domain.CookResponse{}, err
	}

	calculation := &entities.Calculation{
		ID:              uuid.New(),
		UserID:          userUUID,
		RecipeID:        recipeUUID,
		Pax:             req.Pax,
		IngredientsUsed: string(payload),
		PortionWasted:   0,
	}

	if err := s.cookingRepository.CreateCalculation(ctx, calculation); err != nil {
		return domain.CookResponse{}, err
	}

	return domain.CookResponse{CalculationID: calculation.ID.String()}, nil
}

func (s *cookingService) RecordWaste(ctx context.Context, calculationID string, req domain.RecordWasteRequest) error {
	if req.PortionWasted < 0 || math.IsNaN(req.PortionWasted) {
		return domain.ErrInvalidWastePortion
	}

	if _, err := s.cookingRepository.GetCalculationByID(ctx, calculationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCalculationNotFound
		}
		return err
	}

	return s.cookingRepository.UpdatePortionWasted(ctx, calculationID, req.PortionWasted)
}

func (s *cookingService) GetCookingHistory(ctx context.Context, userID string) ([]domain.CookingHistoryResponse, error) {
	calculations, err := s.cookingRepository.GetCalculationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CookingHistoryResponse, 0, len(calculations))
	for _, calculation := range calculations {
		var ingredients []domain.IngredientUsed
		if err := json.Unmarshal([]byte(calculation.IngredientsUsed), &ingredients); err != nil {
			ingredients = []domain.IngredientUsed{}
		}
		response = append(response, domain.CookingHistoryResponse{
			CalculationID:   calculation.ID.String(),
			RecipeID:        calculation.RecipeID.String(),
			Pax:             calculation.Pax,
			IngredientsUsed: ingredients,
			PortionWasted:   calculation.PortionWasted,
			CreatedAt:       calculation.CreatedAt,
		})
	}
	return response, nil
}
