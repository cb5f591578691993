package waste

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/entities"
	"grocery-tracker/internal/utils/mailing"
	"grocery-tracker/pkg/grocery"

	"github.com/google/uuid"
)

type (
	WasteService interface {
		StoreWeeklyWaste(ctx context.Context) (domain.WeeklyWasteResponse, error)
		GetWasteHistory(ctx context.Context) ([]domain.WeeklyWasteResponse, error)
	}

	wasteService struct {
		wasteRepository   WasteRepository
		groceryRepository grocery.GroceryRepository
	}
)

func NewWasteService(wasteRepository WasteRepository, groceryRepository grocery.GroceryRepository) WasteService {
	return &wasteService{
		wasteRepository:   wasteRepository,
		groceryRepository: groceryRepository,
	}
}

// StoreWeeklyWaste aggregates expired inventory into one weekly record. It is
// invoked by the external scheduler; the digest mails afterwards are best
// effort and never fail the aggregation.
func (s *wasteService) StoreWeeklyWaste(ctx context.Context) (domain.WeeklyWasteResponse, error) {
	now := time.Now()

	expired, err := s.groceryRepository.GetExpiredGroceries(ctx, now)
	if err != nil {
		return domain.WeeklyWasteResponse{}, err
	}

	var totalWasted float64
	for _, row := range expired {
		totalWasted += row.Quantity
	}

	// saved is measured against a fixed 100-unit weekly threshold
	totalSaved := 100 - totalWasted

	record := &entities.FoodWaste{
		ID:     uuid.New(),
		WeekOf: now,
		Wasted: totalWasted,
		Saved:  totalSaved,
	}

	if err := s.wasteRepository.CreateFoodWaste(ctx, record); err != nil {
		return domain.WeeklyWasteResponse{}, err
	}

	s.sendExpiryDigests(ctx, expired)

	return domain.WeeklyWasteResponse{
		WeekOf: record.WeekOf,
		Wasted: record.Wasted,
		Saved:  record.Saved,
	}, nil
}

func (s *wasteService) GetWasteHistory(ctx context.Context) ([]domain.WeeklyWasteResponse, error) {
	history, err := s.wasteRepository.GetWasteHistory(ctx, 52)
	if err != nil {
		return nil, err
	}

	response := make([]domain.WeeklyWasteResponse, 0, len(history))
	for _, record := range history {
		response = append(response, domain.WeeklyWasteResponse{
			WeekOf: record.WeekOf,
			Wasted: record.Wasted,
			Saved:  record.Saved,
		})
	}
	return response, nil
}

func (s *wasteService) sendExpiryDigests(ctx context.Context, expired []*entities.Grocery) {
	byUser := make(map[string][]*entities.Grocery)
	for _, row := range expired {
		key := row.UserID.String()
		byUser[key] = append(byUser[key], row)
	}

	for userID, rows := range byUser {
		user, err := s.wasteRepository.GetUserByID(ctx, userID)
		if err != nil || user.Email == "" {
			continue
		}

		var list strings.Builder
		for _, row := range rows {
			list.WriteString(fmt.Sprintf("<li>%s (%g %s)</li>", row.Name, row.Quantity, row.Unit))
		}

		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>These groceries expired this week:</p><ul>%s</ul>",
			user.Username, list.String(),
		)

		if err := mailing.SendMail(user.Email, "Your weekly food waste summary", body); err != nil {
			log.Printf("Error sending expiry digest to %s: %v", user.Email, err)
		}
	}
}
