package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateItem_Success(t *testing.T) {
	// Setup
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	// Execute
	resp := env.createItem(t, "Leche", 2, "2024-03-12")

	// Assert
	assert.Equal(t, "Leche", resp.Item.Name)
	assert.Equal(t, 2, resp.Item.Quantity)
	assert.Equal(t, "Refrigerador", resp.Item.LocationName)
	assert.Equal(t, "2024-03-10", resp.Item.DateAdded)
	assert.Equal(t, "urgent", resp.Item.ExpirationStatus)
	require.NotNil(t, resp.Item.DaysUntilExpiration)
	assert.Equal(t, 2, *resp.Item.DaysUntilExpiration)
	require.NotNil(t, resp.Movement)
	assert.Equal(t, "Añadido", resp.Movement.Type)
	assert.Equal(t, 2, resp.Movement.QuantityChange)

	env.eventBus.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("events.ItemAddedEvent"))
	env.eventBus.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("events.MovementRecordedEvent"))
}

func TestCreateItem_InvalidRequests(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	testCases := []struct {
		name   string
		body   map[string]interface{}
		status int
		code   string
	}{
		{
			name:   "ZeroQuantity",
			body:   map[string]interface{}{"name": "Pan", "food_type": "Granos", "quantity": 0, "unit": "Item(s)", "location_id": env.pantry},
			status: http.StatusBadRequest,
			code:   "InvalidRequest",
		},
		{
			name:   "MissingName",
			body:   map[string]interface{}{"food_type": "Granos", "quantity": 1, "unit": "Item(s)", "location_id": env.pantry},
			status: http.StatusBadRequest,
			code:   "InvalidRequest",
		},
		{
			name:   "BlankName",
			body:   map[string]interface{}{"name": "   ", "food_type": "Granos", "quantity": 1, "unit": "Item(s)", "location_id": env.pantry},
			status: http.StatusBadRequest,
			code:   "ValidationError",
		},
		{
			name:   "UnknownFoodType",
			body:   map[string]interface{}{"name": "Pan", "food_type": "Bread", "quantity": 1, "unit": "Item(s)", "location_id": env.pantry},
			status: http.StatusBadRequest,
			code:   "ValidationError",
		},
		{
			name:   "UnknownUnit",
			body:   map[string]interface{}{"name": "Pan", "food_type": "Granos", "quantity": 1, "unit": "loaf", "location_id": env.pantry},
			status: http.StatusBadRequest,
			code:   "ValidationError",
		},
		{
			name:   "BadExpirationDate",
			body:   map[string]interface{}{"name": "Pan", "food_type": "Granos", "quantity": 1, "unit": "Item(s)", "location_id": env.pantry, "expiration_date": "12/03/2024"},
			status: http.StatusBadRequest,
			code:   "ValidationError",
		},
		{
			name:   "UnknownLocation",
			body:   map[string]interface{}{"name": "Pan", "food_type": "Granos", "quantity": 1, "unit": "Item(s)", "location_id": 99},
			status: http.StatusNotFound,
			code:   "LocationNotFound",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/v1/items", tc.body)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decode[ErrorResponse](t, w).Error)
		})
	}

	assert.Empty(t, env.store.Movements(context.Background()), "rejected requests must not record movements")
}

func TestCreateItem_Lenient_UnknownLocation(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: false}, false)

	w := env.do(http.MethodPost, "/api/v1/items", map[string]interface{}{
		"name": "Pan", "food_type": "Granos", "quantity": 1, "unit": "Item(s)", "location_id": 99,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	env.eventBus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAdjustQuantity(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Huevos", 6, "")
	path := fmt.Sprintf("/api/v1/items/%d/adjust", item.Item.ID)

	testCases := []struct {
		name         string
		quantity     int
		movementType string
		change       int
	}{
		{"Decrease", 4, "Usado", 2},
		{"Increase", 10, "Añadido", 6},
		{"NoChange", 10, "", 0},
		{"ToZero", 0, "Usado", 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(http.MethodPost, path, map[string]interface{}{"quantity": tc.quantity})

			require.Equal(t, http.StatusOK, w.Code)
			resp := decode[MutationResponse](t, w)
			assert.Equal(t, tc.quantity, resp.Item.Quantity)
			if tc.movementType == "" {
				assert.Nil(t, resp.Movement)
				return
			}
			require.NotNil(t, resp.Movement)
			assert.Equal(t, tc.movementType, resp.Movement.Type)
			assert.Equal(t, tc.change, resp.Movement.QuantityChange)
		})
	}

	// one ADDED from creation plus three adjustments
	assert.Len(t, env.store.History(context.Background(), item.Item.ID), 4)
}

func TestAdjustQuantity_Negative(t *testing.T) {
	strict := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := strict.createItem(t, "Huevos", 6, "")

	w := strict.do(http.MethodPost, fmt.Sprintf("/api/v1/items/%d/adjust", item.Item.ID), map[string]interface{}{"quantity": -1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidQuantity", decode[ErrorResponse](t, w).Error)

	lenient := newTestEnv(t, repository.StoreOptions{Strict: false}, false)
	item = lenient.createItem(t, "Huevos", 6, "")

	w = lenient.do(http.MethodPost, fmt.Sprintf("/api/v1/items/%d/adjust", item.Item.ID), map[string]interface{}{"quantity": -1})

	assert.Equal(t, http.StatusNoContent, w.Code)
	stored, err := lenient.store.GetItem(context.Background(), item.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Quantity)
}

func TestAdjustQuantity_MissingQuantity(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Huevos", 6, "")

	w := env.do(http.MethodPost, fmt.Sprintf("/api/v1/items/%d/adjust", item.Item.ID), map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustQuantity_NotFound(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	w := env.do(http.MethodPost, "/api/v1/items/42/adjust", map[string]interface{}{"quantity": 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item ID: 42", decode[ErrorResponse](t, w).Details)
}

func TestUpdateItem_KeepsQuantityAndRecordsNoMovement(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Leche", 3, "")

	w := env.do(http.MethodPut, fmt.Sprintf("/api/v1/items/%d", item.Item.ID), map[string]interface{}{
		"name":            "Leche de avena",
		"food_type":       "Bebidas",
		"brand":           "Oatly",
		"expiration_date": "2024-03-01",
		"unit":            "L",
		"location_id":     env.pantry,
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ItemResponse](t, w)
	assert.Equal(t, "Leche de avena", resp.Name)
	assert.Equal(t, "Despensa", resp.LocationName)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, "expired", resp.ExpirationStatus)
	assert.Len(t, env.store.Movements(context.Background()), 1)
	env.eventBus.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("events.ItemUpdatedEvent"))
}

func TestUpdateItem_NotFound(t *testing.T) {
	body := map[string]interface{}{"name": "X", "food_type": "Otros", "unit": "g", "location_id": 1}

	strict := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	assert.Equal(t, http.StatusNotFound, strict.do(http.MethodPut, "/api/v1/items/5", body).Code)

	lenient := newTestEnv(t, repository.StoreOptions{Strict: false}, false)
	assert.Equal(t, http.StatusNoContent, lenient.do(http.MethodPut, "/api/v1/items/5", body).Code)
}

func TestDeleteItem_RecordsDiscardedMovement(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Yogur", 4, "")

	w := env.do(http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", item.Item.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[MutationResponse](t, w)
	require.NotNil(t, resp.Movement)
	assert.Equal(t, "Descartado", resp.Movement.Type)
	assert.Equal(t, 4, resp.Movement.QuantityChange)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, fmt.Sprintf("/api/v1/items/%d", item.Item.ID), nil).Code)

	history := decode[[]MovementResponse](t, env.do(http.MethodGet, "/api/v1/movements", nil))
	require.Len(t, history, 2)
	assert.Equal(t, "Descartado", history[0].Type)
	assert.Equal(t, "Yogur", history[0].ItemName)
	env.eventBus.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("events.ItemDeletedEvent"))
}

func TestDeleteItem_NotFound(t *testing.T) {
	strict := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	assert.Equal(t, http.StatusNotFound, strict.do(http.MethodDelete, "/api/v1/items/9", nil).Code)

	lenient := newTestEnv(t, repository.StoreOptions{Strict: false}, false)
	assert.Equal(t, http.StatusNoContent, lenient.do(http.MethodDelete, "/api/v1/items/9", nil).Code)
	assert.Empty(t, lenient.store.Movements(context.Background()))
}

func TestListItems_SortedByName(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	env.createItem(t, "Zanahoria", 1, "")
	env.createItem(t, "Ñame", 1, "")
	env.createItem(t, "Arroz", 1, "")

	items := decode[[]ItemResponse](t, env.do(http.MethodGet, "/api/v1/items", nil))

	require.Len(t, items, 3)
	assert.Equal(t, []string{"Arroz", "Ñame", "Zanahoria"}, []string{items[0].Name, items[1].Name, items[2].Name})
	assert.Equal(t, "none", items[0].ExpirationStatus)
}

func TestGetItem_InvalidID(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	w := env.do(http.MethodGet, "/api/v1/items/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMovements_FilterByItem(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	milk := env.createItem(t, "Leche", 2, "")
	env.createItem(t, "Pan", 1, "")

	history := decode[[]MovementResponse](t, env.do(http.MethodGet, fmt.Sprintf("/api/v1/movements?item_id=%d", milk.Item.ID), nil))

	require.Len(t, history, 1)
	assert.Equal(t, milk.Item.ID, history[0].ItemID)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/v1/movements?item_id=x", nil).Code)
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	catalog := decode[CatalogResponse](t, env.do(http.MethodGet, "/api/v1/catalog", nil))

	assert.Len(t, catalog.FoodTypes, 12)
	assert.Contains(t, catalog.Units, "Caja(as)")
}

func TestDeleteItem_RetriedNotFoundKeepsFailing(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	for attempt := 1; attempt <= 2; attempt++ {
		w := env.doWithRequestID(http.MethodDelete, "/api/v1/items/42", nil, "delete-42")

		assert.Equal(t, http.StatusNotFound, w.Code, "attempt %d", attempt)
		assert.Equal(t, "ItemNotFound", decode[ErrorResponse](t, w).Error)
		assert.Empty(t, w.Header().Get("X-Idempotent-Replay"))
	}
}

func TestAdjustQuantity_RetryIsReplayed(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Yogur", 6, "")
	path := fmt.Sprintf("/api/v1/items/%d/adjust", item.Item.ID)

	first := env.doWithRequestID(http.MethodPost, path, map[string]interface{}{"quantity": 2}, "adjust-1")
	retry := env.doWithRequestID(http.MethodPost, path, map[string]interface{}{"quantity": 2}, "adjust-1")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, retry.Code)
	assert.Equal(t, "true", retry.Header().Get("X-Idempotent-Replay"))
	assert.JSONEq(t, first.Body.String(), retry.Body.String())
	assert.Len(t, env.store.Movements(context.Background()), 2, "ADDED on create plus one USED")
}

func TestAdjustQuantity_RetryAfterNotFoundRunsAgain(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)

	w := env.doWithRequestID(http.MethodPost, "/api/v1/items/1/adjust", map[string]interface{}{"quantity": 3}, "adjust-early")
	require.Equal(t, http.StatusNotFound, w.Code)

	item := env.createItem(t, "Queso", 1, "")
	require.Equal(t, int64(1), item.Item.ID)

	w = env.doWithRequestID(http.MethodPost, "/api/v1/items/1/adjust", map[string]interface{}{"quantity": 3}, "adjust-early")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[MutationResponse](t, w).Item.Quantity)
}
