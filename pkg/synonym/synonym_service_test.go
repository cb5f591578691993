package synonym

import (
	"context"
	"testing"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mutableSynonymRepository struct {
	entries []*entities.GroceryItem
}

func (m *mutableSynonymRepository) GetAllEntries(ctx context.Context) ([]*entities.GroceryItem, error) {
	return m.entries, nil
}

func (m *mutableSynonymRepository) GetEntryByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	for _, entry := range m.entries {
		if entry.ID.String() == id {
			return entry, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mutableSynonymRepository) GetEntryByCommonName(ctx context.Context, commonName string) (*entities.GroceryItem, error) {
	for _, entry := range m.entries {
		if entry.CommonName == commonName {
			return entry, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mutableSynonymRepository) CreateEntry(ctx context.Context, entry *entities.GroceryItem) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mutableSynonymRepository) UpdateEntry(ctx context.Context, entry *entities.GroceryItem) error {
	for i, existing := range m.entries {
		if existing.ID == entry.ID {
			m.entries[i] = entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mutableSynonymRepository) DeleteEntry(ctx context.Context, id string) error {
	for i, entry := range m.entries {
		if entry.ID.String() == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestSynonymServiceMutationsRefreshDictionary(t *testing.T) {
	t.Run("add entry", func(t *testing.T) {
		repo := &mutableSynonymRepository{}
		dictionary := NewDictionary(repo)
		service := NewSynonymService(repo, dictionary)

		res, err := service.AddEntry(context.Background(), domain.SynonymEntryRequest{
			CommonName: "apple",
			Synonyms:   []string{"apel", "fuji"},
		})

		require.NoError(t, err)
		assert.Equal(t, "apple", res.CommonName)

		name, ok := dictionary.Resolve("apel")
		require.True(t, ok)
		assert.Equal(t, "apple", name)
	})

	t.Run("update entry replaces the aliases", func(t *testing.T) {
		entry := &entities.GroceryItem{ID: uuid.New(), CommonName: "apple", Synonyms: `["apel"]`}
		repo := &mutableSynonymRepository{entries: []*entities.GroceryItem{entry}}
		dictionary := NewDictionary(repo)
		require.NoError(t, dictionary.Reload(context.Background()))
		service := NewSynonymService(repo, dictionary)

		err := service.UpdateEntry(context.Background(), entry.ID.String(), domain.UpdateSynonymsRequest{
			Synonyms: []string{"manzana"},
		})

		require.NoError(t, err)

		_, ok := dictionary.Resolve("apel")
		assert.False(t, ok)

		name, ok := dictionary.Resolve("manzana")
		require.True(t, ok)
		assert.Equal(t, "apple", name)
	})

	t.Run("delete entry drops its aliases", func(t *testing.T) {
		entry := &entities.GroceryItem{ID: uuid.New(), CommonName: "apple", Synonyms: `["apel"]`}
		repo := &mutableSynonymRepository{entries: []*entities.GroceryItem{entry}}
		dictionary := NewDictionary(repo)
		require.NoError(t, dictionary.Reload(context.Background()))
		service := NewSynonymService(repo, dictionary)

		require.NoError(t, service.DeleteEntry(context.Background(), entry.ID.String()))

		_, ok := dictionary.Resolve("apel")
		assert.False(t, ok)
		assert.Zero(t, dictionary.Size())
	})
}

func TestSynonymServiceErrors(t *testing.T) {
	t.Run("duplicate common name", func(t *testing.T) {
		repo := &mutableSynonymRepository{entries: []*entities.GroceryItem{
			{ID: uuid.New(), CommonName: "apple", Synonyms: `["apel"]`},
		}}
		service := NewSynonymService(repo, NewDictionary(repo))

		_, err := service.AddEntry(context.Background(), domain.SynonymEntryRequest{
			CommonName: "apple",
			Synonyms:   []string{"fuji"},
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateCommonName)
	})

	t.Run("unknown entry id", func(t *testing.T) {
		repo := &mutableSynonymRepository{}
		service := NewSynonymService(repo, NewDictionary(repo))

		err := service.UpdateEntry(context.Background(), uuid.New().String(), domain.UpdateSynonymsRequest{
			Synonyms: []string{"fuji"},
		})
		assert.ErrorIs(t, err, domain.ErrSynonymEntryNotFound)

		err = service.DeleteEntry(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrSynonymEntryNotFound)
	})
}
