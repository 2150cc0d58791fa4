package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlerts(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	empty := env.createItem(t, "Arroz", 1, "")
	env.do(http.MethodPost, fmt.Sprintf("/api/v1/items/%d/adjust", empty.Item.ID), map[string]interface{}{"quantity": 0})
	env.createItem(t, "Yogur", 2, "2024-03-09")
	env.createItem(t, "Queso", 1, "2024-03-10")

	w := env.do(http.MethodGet, "/api/v1/reports/alerts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	alerts := decode[AlertsResponse](t, w)
	assert.Equal(t, "2024-03-10", alerts.ReferenceDate)
	require.Len(t, alerts.OutOfStock, 1)
	assert.Equal(t, "Arroz", alerts.OutOfStock[0].Name)
	require.Len(t, alerts.Expired, 1, "expiring today is not expired")
	assert.Equal(t, "Yogur", alerts.Expired[0].Name)
	assert.Equal(t, 2, alerts.Total)
}

func TestAlerts_ReferenceDate(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	env.createItem(t, "Queso", 1, "2024-03-10")

	alerts := decode[AlertsResponse](t, env.do(http.MethodGet, "/api/v1/reports/alerts?date=2024-03-11", nil))

	assert.Len(t, alerts.Expired, 1)
	assert.Equal(t, 1, alerts.Total)

	w := env.do(http.MethodGet, "/api/v1/reports/alerts?date=11-03-2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlerts_ReferenceDateLeavesGaugeUntouched(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	env.createItem(t, "Queso", 1, "2024-03-10")

	w := env.do(http.MethodGet, "/api/v1/reports/alerts?date=2024-03-11", nil)
	require.Equal(t, http.StatusOK, w.Code)

	count, err := testutil.GatherAndCount(env.metrics.Registry(), "homeinventory_alerts")
	require.NoError(t, err)
	assert.Zero(t, count)

	w = env.do(http.MethodGet, "/api/v1/reports/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	count, err = testutil.GatherAndCount(env.metrics.Registry(), "homeinventory_alerts")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestConsumption(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Leche", 5, "")
	env.do(http.MethodPost, fmt.Sprintf("/api/v1/items/%d/adjust", item.Item.ID), map[string]interface{}{"quantity": 2})
	env.do(http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", item.Item.ID), nil)

	w := env.do(http.MethodGet, "/api/v1/reports/consumption", nil)

	require.Equal(t, http.StatusOK, w.Code)
	report := decode[ConsumptionResponse](t, w)
	require.Len(t, report.Days, 7)
	assert.Equal(t, "2024-03-04", report.Days[0].Date)
	assert.Equal(t, "4 mar", report.Days[0].Label)
	last := report.Days[6]
	assert.Equal(t, "10 mar", last.Label)
	assert.Equal(t, 5, last.Total, "3 used + 2 discarded, additions excluded")
}

func TestConsumption_OlderReferenceDate(t *testing.T) {
	env := newTestEnv(t, repository.StoreOptions{Strict: true}, false)
	item := env.createItem(t, "Leche", 5, "")
	env.do(http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", item.Item.ID), nil)

	report := decode[ConsumptionResponse](t, env.do(http.MethodGet, "/api/v1/reports/consumption?date=2024-03-09", nil))

	for _, day := range report.Days {
		assert.Zero(t, day.Total)
	}
}
