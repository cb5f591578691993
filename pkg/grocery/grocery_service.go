package grocery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		AddGrocery(ctx context.Context, req domain.GroceryRequest, userID string) (domain.GroceryResponse, error)
		UpdateGrocery(ctx context.Context, id string, req domain.GroceryRequest, userID string) error
		DeleteGrocery(ctx context.Context, id string, userID string) error
		GetGroceries(ctx context.Context, userID string) ([]domain.GroceryResponse, error)
		BulkAddGroceries(ctx context.Context, req domain.BulkAddGroceriesRequest, userID string) error
	}

	groceryService struct {
		groceryRepository GroceryRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository) GroceryService {
	return &groceryService{groceryRepository: groceryRepository}
}

func (s *groceryService) AddGrocery(ctx context.Context, req domain.GroceryRequest, userID string) (domain.GroceryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryResponse{}, domain.ErrParseUUID
	}

	grocery, err := toGrocery(req, userUUID)
	if err != nil {
		return domain.GroceryResponse{}, err
	}

	if err := s.groceryRepository.AddGrocery(ctx, grocery); err != nil {
		return domain.GroceryResponse{}, err
	}

	return toGroceryResponse(grocery), nil
}

func (s *groceryService) UpdateGrocery(ctx context.Context, id string, req domain.GroceryRequest, userID string) error {
	grocery, err := s.groceryRepository.GetGroceryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryNotFound
		}
		return err
	}

	if grocery.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	updated, err := toGrocery(req, grocery.UserID)
	if err != nil {
		return err
	}

	grocery.Name = updated.Name
	grocery.Quantity = updated.Quantity
	grocery.Unit = updated.Unit
	grocery.Price = updated.Price
	grocery.DateOfPurchase = updated.DateOfPurchase
	grocery.DateOfExpiry = updated.DateOfExpiry

	return s.groceryRepository.UpdateGrocery(ctx, grocery)
}

func (s *groceryService) DeleteGrocery(ctx context.Context, id string, userID string) error {
	grocery, err := s.groceryRepository.GetGroceryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryNotFound
		}
		return err
	}

	if grocery.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.groceryRepository.DeleteGrocery(ctx, id, userID)
}

func (s *groceryService) GetGroceries(ctx context.Context, userID string) ([]domain.GroceryResponse, error) {
	groceries, err := s.groceryRepository.GetGroceriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryResponse, 0, len(groceries))
	for _, grocery := range groceries {
		response = append(response, toGroceryResponse(grocery))
	}
	return response, nil
}

// BulkAddGroceries commits a reviewed candidate list. Every item is validated
// before anything is inserted; one bad item rejects the whole batch. This is
// deliberately stricter than cook-time reconciliation, which skips bad
// entries and keeps going.
func (s *groceryService) BulkAddGroceries(ctx context.Context, req domain.BulkAddGroceriesRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	groceries := make([]*entities.Grocery, 0, len(req.Items))
	for i, item := range req.Items {
		grocery, err := toGrocery(item, userUUID)
		if err != nil {
			return fmt.Errorf("item %d (%s): %w", i+1, item.Name, err)
		}
		groceries = append(groceries, grocery)
	}

	return s.groceryRepository.AddGroceries(ctx, groceries)
}

func toGrocery(req domain.GroceryRequest, userID uuid.UUID) (*entities.Grocery, error) {
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" || len(name) > 255 {
		return nil, domain.ErrInvalidGrocery
	}

	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidGrocery
	}

	if strings.TrimSpace(req.Unit) == "" {
		return nil, domain.ErrInvalidGrocery
	}

	if req.Price < 0 {
		return nil, domain.ErrInvalidGrocery
	}

	purchaseDate, err := time.Parse("2006-01-02", req.DateOfPurchase)
	if err != nil {
		return nil, domain.ErrInvalidGrocery
	}

	var expiryDate *time.Time
	if req.DateOfExpiry != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfExpiry)
		if err != nil {
			return nil, domain.ErrInvalidGrocery
		}
		expiryDate = &parsed
	}

	return &entities.Grocery{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Price:          req.Price,
		DateOfPurchase: purchaseDate,
		DateOfExpiry:   expiryDate,
	}, nil
}

func toGroceryResponse(grocery *entities.Grocery) domain.GroceryResponse {
	response := domain.GroceryResponse{
		ID:             grocery.ID.String(),
		Name:           grocery.Name,
		Quantity:       grocery.Quantity,
		Unit:           grocery.Unit,
		Price:          grocery.Price,
		DateOfPurchase: grocery.DateOfPurchase,
		CreatedAt:      grocery.CreatedAt,
	}
	if grocery.DateOfExpiry != nil {
		expiry := grocery.DateOfExpiry.Format("2006-01-02")
		response.DateOfExpiry = &expiry
	}
	return response
}
