package cooking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGroceryRepository struct {
	rows map[string]*entities.Grocery // keyed by lowercase name

	updates map[string]float64 // grocery id -> new quantity
	deleted []string           // grocery ids
}

func newFakeGroceryRepository(rows ...*entities.Grocery) *fakeGroceryRepository {
	byName := make(map[string]*entities.Grocery, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}
	return &fakeGroceryRepository{
		rows:    byName,
		updates: map[string]float64{},
	}
}

func (f *fakeGroceryRepository) AddGrocery(ctx context.Context, grocery *entities.Grocery) error {
	return errors.New("not implemented")
}

func (f *fakeGroceryRepository) AddGroceries(ctx context.Context, groceries []*entities.Grocery) error {
	return errors.New("not implemented")
}

func (f *fakeGroceryRepository) GetGroceryByID(ctx context.Context, id string) (*entities.Grocery, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroceryRepository) GetGroceriesByUser(ctx context.Context, userID string) ([]*entities.Grocery, error) {
	return nil, nil
}

func (f *fakeGroceryRepository) GetInStockByUser(ctx context.Context, userID string) ([]*entities.Grocery, error) {
	return nil, nil
}

func (f *fakeGroceryRepository) FindByNameForUser(ctx context.Context, userID string, name string) (*entities.Grocery, error) {
	row, ok := f.rows[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (f *fakeGroceryRepository) UpdateGrocery(ctx context.Context, grocery *entities.Grocery) error {
	return errors.New("not implemented")
}

func (f *fakeGroceryRepository) UpdateQuantity(ctx context.Context, id string, quantity float64) error {
	f.updates[id] = quantity
	return nil
}

func (f *fakeGroceryRepository) DeleteGrocery(ctx context.Context, id string, userID string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeGroceryRepository) GetExpiredGroceries(ctx context.Context, before time.Time) ([]*entities.Grocery, error) {
	return nil, nil
}

type fakeCookingRepository struct {
	created      *entities.Calculation
	calculations map[string]*entities.Calculation
	wasted       map[string]float64
}

func newFakeCookingRepository(calculations ...*entities.Calculation) *fakeCookingRepository {
	byID := make(map[string]*entities.Calculation, len(calculations))
	for _, calculation := range calculations {
		byID[calculation.ID.String()] = calculation
	}
	return &fakeCookingRepository{
		calculations: byID,
		wasted:       map[string]float64{},
	}
}

func (f *fakeCookingRepository) CreateCalculation(ctx context.Context, calculation *entities.Calculation) error {
	f.created = calculation
	return nil
}

func (f *fakeCookingRepository) GetCalculationByID(ctx context.Context, id string) (*entities.Calculation, error) {
	calculation, ok := f.calculations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return calculation, nil
}

func (f *fakeCookingRepository) UpdatePortionWasted(ctx context.Context, id string, portionWasted float64) error {
	f.wasted[id] = portionWasted
	return nil
}

func (f *fakeCookingRepository) GetCalculationsByUser(ctx context.Context, userID string) ([]*entities.Calculation, error) {
	matched := make([]*entities.Calculation, 0, len(f.calculations))
	for _, calculation := range f.calculations {
		if calculation.UserID.String() == userID {
			matched = append(matched, calculation)
		}
	}
	return matched, nil
}

func groceryRow(name string, quantity float64) *entities.Grocery {
	return &entities.Grocery{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
	}
}

func TestCookRecipe(t *testing.T) {
	userID := uuid.New().String()
	recipeID := uuid.New().String()

	t.Run("decrements inventory and records the calculation", func(t *testing.T) {
		rice := groceryRow("rice", 5)
		groceries := newFakeGroceryRepository(rice)
		cookings := newFakeCookingRepository()
		service := NewCookingService(cookings, groceries)

		res, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID: recipeID,
			Pax:      2,
			IngredientsUsed: []domain.IngredientUsed{
				{IngredientName: "Rice", IngredientQuantity: 2, IngredientUnit: "cup"},
			},
		}, userID)

		require.NoError(t, err)
		assert.NotEmpty(t, res.CalculationID)
		assert.InDelta(t, 3, groceries.updates[rice.ID.String()], 1e-9)
		assert.Empty(t, groceries.deleted)

		require.NotNil(t, cookings.created)
		assert.Equal(t, userID, cookings.created.UserID.String())
		assert.Equal(t, recipeID, cookings.created.RecipeID.String())
		assert.Equal(t, 2, cookings.created.Pax)
		assert.Zero(t, cookings.created.PortionWasted)
		assert.Contains(t, cookings.created.IngredientsUsed, `"ingredient_name":"Rice"`)
	})

	t.Run("deletes the row when quantity reaches zero", func(t *testing.T) {
		rice := groceryRow("rice", 2)
		groceries := newFakeGroceryRepository(rice)
		service := NewCookingService(newFakeCookingRepository(), groceries)

		_, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID: recipeID,
			Pax:      1,
			IngredientsUsed: []domain.IngredientUsed{
				{IngredientName: "rice", IngredientQuantity: 2, IngredientUnit: "cup"},
			},
		}, userID)

		require.NoError(t, err)
		assert.Equal(t, []string{rice.ID.String()}, groceries.deleted)
		assert.Empty(t, groceries.updates)
	})

	t.Run("deletes the row when usage exceeds stock", func(t *testing.T) {
		rice := groceryRow("rice", 1)
		groceries := newFakeGroceryRepository(rice)
		service := NewCookingService(newFakeCookingRepository(), groceries)

		_, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID: recipeID,
			Pax:      1,
			IngredientsUsed: []domain.IngredientUsed{
				{IngredientName: "rice", IngredientQuantity: 5, IngredientUnit: "cup"},
			},
		}, userID)

		require.NoError(t, err)
		assert.Equal(t, []string{rice.ID.String()}, groceries.deleted)
	})

	t.Run("missing ingredient is skipped and the batch continues", func(t *testing.T) {
		rice := groceryRow("rice", 5)
		groceries := newFakeGroceryRepository(rice)
		cookings := newFakeCookingRepository()
		service := NewCookingService(cookings, groceries)

		res, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID: recipeID,
			Pax:      1,
			IngredientsUsed: []domain.IngredientUsed{
				{IngredientName: "truffle", IngredientQuantity: 1, IngredientUnit: "pcs"},
				{IngredientName: "rice", IngredientQuantity: 2, IngredientUnit: "cup"},
			},
		}, userID)

		require.NoError(t, err)
		assert.NotEmpty(t, res.CalculationID)
		assert.InDelta(t, 3, groceries.updates[rice.ID.String()], 1e-9)
	})

	t.Run("ingredient name matching is case insensitive", func(t *testing.T) {
		rice := groceryRow("rice", 5)
		groceries := newFakeGroceryRepository(rice)
		service := NewCookingService(newFakeCookingRepository(), groceries)

		_, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID: recipeID,
			Pax:      1,
			IngredientsUsed: []domain.IngredientUsed{
				{IngredientName: "  RICE ", IngredientQuantity: 1, IngredientUnit: "cup"},
			},
		}, userID)

		require.NoError(t, err)
		assert.InDelta(t, 4, groceries.updates[rice.ID.String()], 1e-9)
	})

	t.Run("malformed ingredients are skipped", func(t *testing.T) {
		rice := groceryRow("rice", 5)
		groceries := newFakeGroceryRepository(rice)
		cookings := newFakeCookingRepository()
		service := NewCookingService(cookings, groceries)

		_, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID: recipeID,
			Pax:      1,
			IngredientsUsed: []domain.IngredientUsed{
				{IngredientName: "", IngredientQuantity: 1, IngredientUnit: "cup"},
				{IngredientName: "rice", IngredientQuantity: 1, IngredientUnit: ""},
			},
		}, userID)

		require.NoError(t, err)
		assert.Empty(t, groceries.updates)
		assert.Empty(t, groceries.deleted)
		require.NotNil(t, cookings.created)
	})

	t.Run("quantities sent as strings are parsed per ingredient", func(t *testing.T) {
		rice := groceryRow("rice", 5)
		egg := groceryRow("egg", 3)
		groceries := newFakeGroceryRepository(rice, egg)
		cookings := newFakeCookingRepository()
		service := NewCookingService(cookings, groceries)

		body := `{"recipe_id":"` + recipeID + `","pax":1,"ingredients_used":[` +
			`{"ingredient_name":"rice","ingredient_quantity":"2","ingredient_unit":"cup"},` +
			`{"ingredient_name":"egg","ingredient_quantity":"abc","ingredient_unit":"pcs"}]}`

		var req domain.CookRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		res, err := service.CookRecipe(context.Background(), req, userID)

		require.NoError(t, err)
		assert.NotEmpty(t, res.CalculationID)
		assert.InDelta(t, 3, groceries.updates[rice.ID.String()], 1e-9)
		_, touched := groceries.updates[egg.ID.String()]
		assert.False(t, touched)
		assert.Empty(t, groceries.deleted)

		// the unparseable quantity serializes as null in the stored event
		require.NotNil(t, cookings.created)
		assert.Contains(t, cookings.created.IngredientsUsed, `"ingredient_quantity":null`)
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		service := NewCookingService(newFakeCookingRepository(), newFakeGroceryRepository())

		_, err := service.CookRecipe(context.Background(), domain.CookRequest{
			RecipeID:        recipeID,
			Pax:             1,
			IngredientsUsed: []domain.IngredientUsed{{IngredientName: "rice", IngredientQuantity: 1, IngredientUnit: "cup"}},
		}, "not-a-uuid")

		assert.ErrorIs(t, err, domain.ErrParseUUID)
	})
}

func TestGetCookingHistory(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the user's calculations with decoded ingredients", func(t *testing.T) {
		calculation := &entities.Calculation{
			ID:              uuid.New(),
			UserID:          userID,
			RecipeID:        uuid.New(),
			Pax:             2,
			IngredientsUsed: `[{"ingredient_name":"rice","ingredient_quantity":2,"ingredient_unit":"cup"}]`,
			PortionWasted:   0.25,
		}
		other := &entities.Calculation{ID: uuid.New(), UserID: uuid.New(), RecipeID: uuid.New()}
		service := NewCookingService(newFakeCookingRepository(calculation, other), newFakeGroceryRepository())

		res, err := service.GetCookingHistory(context.Background(), userID.String())

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, calculation.ID.String(), res[0].CalculationID)
		assert.Equal(t, 2, res[0].Pax)
		assert.InDelta(t, 0.25, res[0].PortionWasted, 1e-9)
		require.Len(t, res[0].IngredientsUsed, 1)
		assert.Equal(t, "rice", res[0].IngredientsUsed[0].IngredientName)
	})

	t.Run("malformed stored ingredients decode to an empty list", func(t *testing.T) {
		calculation := &entities.Calculation{
			ID:              uuid.New(),
			UserID:          userID,
			RecipeID:        uuid.New(),
			IngredientsUsed: `not json`,
		}
		service := NewCookingService(newFakeCookingRepository(calculation), newFakeGroceryRepository())

		res, err := service.GetCookingHistory(context.Background(), userID.String())

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Empty(t, res[0].IngredientsUsed)
	})
}

func TestRecordWaste(t *testing.T) {
	calculation := &entities.Calculation{ID: uuid.New()}

	t.Run("updates the wasted portion", func(t *testing.T) {
		cookings := newFakeCookingRepository(calculation)
		service := NewCookingService(cookings, newFakeGroceryRepository())

		err := service.RecordWaste(context.Background(), calculation.ID.String(), domain.RecordWasteRequest{PortionWasted: 0.5})

		require.NoError(t, err)
		assert.InDelta(t, 0.5, cookings.wasted[calculation.ID.String()], 1e-9)
	})

	t.Run("unknown calculation id", func(t *testing.T) {
		service := NewCookingService(newFakeCookingRepository(), newFakeGroceryRepository())

		err := service.RecordWaste(context.Background(), uuid.New().String(), domain.RecordWasteRequest{PortionWasted: 0.5})

		assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
	})

	t.Run("negative portion is rejected", func(t *testing.T) {
		cookings := newFakeCookingRepository(calculation)
		service := NewCookingService(cookings, newFakeGroceryRepository())

		err := service.RecordWaste(context.Background(), calculation.ID.String(), domain.RecordWasteRequest{PortionWasted: -1})

		assert.ErrorIs(t, err, domain.ErrInvalidWastePortion)
		assert.Empty(t, cookings.wasted)
	})
}
