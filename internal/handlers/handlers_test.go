package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/cache"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/commands"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/events"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/recipes"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockRecipeSuggester is a mock implementation of RecipeSuggester
type MockRecipeSuggester struct {
	mock.Mock
}

func (m *MockRecipeSuggester) Suggest(ctx context.Context, ingredients []string) ([]recipes.Recipe, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recipes.Recipe), args.Error(1)
}

type testEnv struct {
	router    *gin.Engine
	metrics   *metrics.Metrics
	store     *repository.InventoryStore
	eventBus  *MockEventPublisher
	suggester *MockRecipeSuggester
	fridge    int64
	pantry    int64
}

func newTestEnv(t *testing.T, opts repository.StoreOptions, withSuggester bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	opts.Clock = func() time.Time { return testNow }
	store := repository.NewInventoryStore(repository.NewMovementLedger(), repository.NewLocationRegistry(), opts, logger)
	fridge, err := store.CreateLocation(context.Background(), commands.CreateLocationCommand{Name: "Refrigerador"})
	require.NoError(t, err)
	pantry, err := store.CreateLocation(context.Background(), commands.CreateLocationCommand{Name: "Despensa"})
	require.NoError(t, err)

	eventBus := new(MockEventPublisher)
	eventBus.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	m := metrics.New()

	env := &testEnv{store: store, eventBus: eventBus, metrics: m, fridge: fridge.ID, pantry: pantry.ID}

	var suggester RecipeSuggester
	if withSuggester {
		env.suggester = new(MockRecipeSuggester)
		suggester = env.suggester
	}

	inventoryHandler := NewInventoryHandler(logger, store, eventBus, m, time.UTC)
	locationHandler := NewLocationHandler(logger, store, eventBus, m)
	reportHandler := NewReportHandler(logger, store, m, time.UTC)
	recipeHandler := NewRecipeHandler(logger, store, suggester, m, time.Second)
	exportHandler := NewExportHandler(logger, store)

	// Same chain as cmd/api
	requestIDStore := middleware.NewCacheRequestIDStore(cache.NewInMemoryCache())
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(middleware.IdempotencyMiddleware(requestIDStore, logger))
	router.Use(middleware.StoreResponseMiddleware(requestIDStore, logger, time.Minute))
	router.Use(middleware.ErrorHandler(logger))
	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", inventoryHandler.Catalog)
		v1.GET("/items", inventoryHandler.ListItems)
		v1.GET("/items/:id", inventoryHandler.GetItem)
		v1.POST("/items", inventoryHandler.CreateItem)
		v1.PUT("/items/:id", inventoryHandler.UpdateItem)
		v1.POST("/items/:id/adjust", inventoryHandler.AdjustQuantity)
		v1.DELETE("/items/:id", inventoryHandler.DeleteItem)
		v1.GET("/movements", inventoryHandler.ListMovements)
		v1.GET("/locations", locationHandler.ListLocations)
		v1.POST("/locations", locationHandler.CreateLocation)
		v1.PUT("/locations/:id", locationHandler.RenameLocation)
		v1.DELETE("/locations/:id", locationHandler.DeleteLocation)
		v1.GET("/reports/alerts", reportHandler.Alerts)
		v1.GET("/reports/consumption", reportHandler.Consumption)
		v1.POST("/recipes/suggestions", recipeHandler.SuggestRecipes)
		v1.GET("/export/xlsx", exportHandler.ExportSpreadsheet)
		v1.GET("/export/pdf", exportHandler.ExportPDF)
	}
	env.router = router
	return env
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	return e.doWithRequestID(method, path, body, "")
}

// doWithRequestID sends a client X-Request-ID when requestID is not empty
func (e *testEnv) doWithRequestID(method, path string, body interface{}, requestID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createItem(t *testing.T, name string, quantity int, expiration string) MutationResponse {
	t.Helper()
	body := map[string]interface{}{
		"name":        name,
		"food_type":   "Lacteos",
		"quantity":    quantity,
		"unit":        "L",
		"location_id": e.fridge,
	}
	if expiration != "" {
		body["expiration_date"] = expiration
	}
	w := e.do(http.MethodPost, "/api/v1/items", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
