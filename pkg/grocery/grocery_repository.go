package grocery

import (
	"context"
	"time"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		AddGrocery(ctx context.Context, grocery *entities.Grocery) error
		AddGroceries(ctx context.Context, groceries []*entities.Grocery) error
		GetGroceryByID(ctx context.Context, id string) (*entities.Grocery, error)
		GetGroceriesByUser(ctx context.Context, userID string) ([]*entities.Grocery, error)
		GetInStockByUser(ctx context.Context, userID string) ([]*entities.Grocery, error)
		FindByNameForUser(ctx context.Context, userID string, name string) (*entities.Grocery, error)
		UpdateGrocery(ctx context.Context, grocery *entities.Grocery) error
		UpdateQuantity(ctx context.Context, id string, quantity float64) error
		DeleteGrocery(ctx context.Context, id string, userID string) error
		GetExpiredGroceries(ctx context.Context, before time.Time) ([]*entities.Grocery, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddGrocery(ctx context.Context, grocery *entities.Grocery) error {
	return r.db.WithContext(ctx).Create(grocery).Error
}

func (r *groceryRepository) AddGroceries(ctx context.Context, groceries []*entities.Grocery) error {
	return r.db.WithContext(ctx).Create(groceries).Error
}

func (r *groceryRepository) GetGroceryByID(ctx context.Context, id string) (*entities.Grocery, error) {
	var grocery entities.Grocery
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&grocery).Error; err != nil {
		return nil, err
	}
	return &grocery, nil
}

func (r *groceryRepository) GetGroceriesByUser(ctx context.Context, userID string) ([]*entities.Grocery, error) {
	var groceries []*entities.Grocery
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_of_expiry asc").
		Find(&groceries).Error; err != nil {
		return nil, err
	}
	return groceries, nil
}

func (r *groceryRepository) GetInStockByUser(ctx context.Context, userID string) ([]*entities.Grocery, error) {
	var groceries []*entities.Grocery
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity > 0", userID).
		Find(&groceries).Error; err != nil {
		return nil, err
	}
	return groceries, nil
}

func (r *groceryRepository) FindByNameForUser(ctx context.Context, userID string, name string) (*entities.Grocery, error) {
	var grocery entities.Grocery
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = ?", userID, name).
		First(&grocery).Error; err != nil {
		return nil, err
	}
	return &grocery, nil
}

func (r *groceryRepository) UpdateGrocery(ctx context.Context, grocery *entities.Grocery) error {
	return r.db.WithContext(ctx).Save(grocery).Error
}

func (r *groceryRepository) UpdateQuantity(ctx context.Context, id string, quantity float64) error {
	return r.db.WithContext(ctx).Model(&entities.Grocery{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity}).Error
}

func (r *groceryRepository) DeleteGrocery(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Grocery{}).Error
}

func (r *groceryRepository) GetExpiredGroceries(ctx context.Context, before time.Time) ([]*entities.Grocery, error) {
	var groceries []*entities.Grocery
	if err := r.db.WithContext(ctx).
		Where("date_of_expiry IS NOT NULL AND date_of_expiry < ?", before).
		Find(&groceries).Error; err != nil {
		return nil, err
	}
	return groceries, nil
}
