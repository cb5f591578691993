package cooking

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	CookingRepository interface {
		CreateCalculation(ctx context.Context, calculation *entities.Calculation) error
		GetCalculationByID(ctx context.Context, id string) (*entities.Calculation, error)
		UpdatePortionWasted(ctx context.Context, id string, portionWasted float64) error
		GetCalculationsByUser(ctx context.Context, userID string) ([]*entities.Calculation, error)
	}

	cookingRepository struct {
		db *gorm.DB
	}
)

func NewCookingRepository(db *gorm.DB) CookingRepository {
	return &cookingRepository{db: db}
}

func (r *cookingRepository) CreateCalculation(ctx context.Context, calculation *entities.Calculation) error {
	return r.db.WithContext(ctx).Create(calculation).Error
}

func (r *cookingRepository) GetCalculationByID(ctx context.Context, id string) (*entities.Calculation, error) {
	var calculation entities.Calculation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&calculation).Error; err != nil {
		return nil, err
	}
	return &calculation, nil
}

func (r *cookingRepository) UpdatePortionWasted(ctx context.Context, id string, portionWasted float64) error {
	return r.db.WithContext(ctx).Model(&entities.Calculation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"portion_wasted": portionWasted}).Error
}

func (r *cookingRepository) GetCalculationsByUser(ctx context.Context, userID string) ([]*entities.Calculation, error) {
	var calculations []*entities.Calculation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&calculations).Error; err != nil {
		return nil, err
	}
	return calculations, nil
}
