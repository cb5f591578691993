package waste

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	WasteRepository interface {
		CreateFoodWaste(ctx context.Context, foodWaste *entities.FoodWaste) error
		GetWasteHistory(ctx context.Context, limit int) ([]*entities.FoodWaste, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

func (r *wasteRepository) CreateFoodWaste(ctx context.Context, foodWaste *entities.FoodWaste) error {
	return r.db.WithContext(ctx).Create(foodWaste).Error
}

func (r *wasteRepository) GetWasteHistory(ctx context.Context, limit int) ([]*entities.FoodWaste, error) {
	var history []*entities.FoodWaste
	if err := r.db.WithContext(ctx).
		Order("week_of desc").
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *wasteRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
