package synonym

import (
	"context"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

type (
	SynonymRepository interface {
		GetAllEntries(ctx context.Context) ([]*entities.GroceryItem, error)
		GetEntryByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		GetEntryByCommonName(ctx context.Context, commonName string) (*entities.GroceryItem, error)
		CreateEntry(ctx context.Context, entry *entities.GroceryItem) error
		UpdateEntry(ctx context.Context, entry *entities.GroceryItem) error
		DeleteEntry(ctx context.Context, id string) error
	}

	synonymRepository struct {
		db *gorm.DB
	}
)

func NewSynonymRepository(db *gorm.DB) SynonymRepository {
	return &synonymRepository{db: db}
}

func (r *synonymRepository) GetAllEntries(ctx context.Context) ([]*entities.GroceryItem, error) {
	var entries []*entities.GroceryItem
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *synonymRepository) GetEntryByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var entry entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *synonymRepository) GetEntryByCommonName(ctx context.Context, commonName string) (*entities.GroceryItem, error) {
	var entry entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("common_name = ?", commonName).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *synonymRepository) CreateEntry(ctx context.Context, entry *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *synonymRepository) UpdateEntry(ctx context.Context, entry *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *synonymRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}
