package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveMovement(t *testing.T) {
	m := New()

	m.ObserveMovement(domain.Movement{Type: domain.MovementAdded, QuantityChange: 4})
	m.ObserveMovement(domain.Movement{Type: domain.MovementUsed, QuantityChange: 1})
	m.ObserveMovement(domain.Movement{Type: domain.MovementUsed, QuantityChange: 2})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.movements.WithLabelValues("Añadido")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.movements.WithLabelValues("Usado")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.quantityChanged.WithLabelValues("Usado")))
}

func TestSetAlerts(t *testing.T) {
	m := New()

	m.SetAlerts(2, 5)
	m.SetAlerts(1, 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.alerts.WithLabelValues("out_of_stock")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.alerts.WithLabelValues("expired")))
}

func TestObserveRecipeRequest(t *testing.T) {
	m := New()

	m.ObserveRecipeRequest(RecipeOutcomeSuccess, time.Second)
	m.ObserveRecipeRequest(RecipeOutcomeDisabled, 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.recipeRequests.WithLabelValues(RecipeOutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.recipeRequests.WithLabelValues(RecipeOutcomeDisabled)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.recipeDuration))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/items", http.StatusOK, 10*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "homeinventory_http_request_duration_seconds")
	assert.Contains(t, w.Body.String(), `route="/api/v1/items"`)
}
