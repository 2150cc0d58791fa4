package handlers

import (
	"net/http"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/reports"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	apierrors "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	logger   *zap.Logger
	store    *repository.InventoryStore
	metrics  *metrics.Metrics
	location *time.Location
}

func NewReportHandler(logger *zap.Logger, store *repository.InventoryStore, m *metrics.Metrics, loc *time.Location) *ReportHandler {
	return &ReportHandler{
		logger:   logger,
		store:    store,
		metrics:  m,
		location: loc,
	}
}

// referenceDate reads ?date=YYYY-MM-DD, defaulting to now
func (h *ReportHandler) referenceDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return h.store.Now().In(h.location), true
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, h.location)
	if err != nil {
		abortWithError(c, apierrors.NewValidationError("date must be YYYY-MM-DD", "date"))
		return time.Time{}, false
	}
	return day, true
}

// Alerts handles GET /api/v1/reports/alerts
// @Summary      Stock and expiration alerts
// @Description  Alimentos agotados (cantidad 0) y caducados (caducidad anterior al día de referencia). Un alimento puede aparecer en ambas listas.
// @Tags         reports
// @Produce      json
// @Param        date  query     string  false  "Día de referencia (YYYY-MM-DD), por defecto hoy"
// @Success      200   {object}  AlertsResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /reports/alerts [get]
func (h *ReportHandler) Alerts(c *gin.Context) {
	reference, ok := h.referenceDate(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	alerts := reports.EvaluateAlerts(h.store.ListItems(ctx), reference)
	// the gauge tracks today only
	if c.Query("date") == "" {
		h.metrics.SetAlerts(len(alerts.OutOfStock), len(alerts.Expired))
	}

	names := locationNameIndex(h.store.ListLocations(ctx))
	c.JSON(http.StatusOK, AlertsResponse{
		ReferenceDate: reference.Format(time.DateOnly),
		OutOfStock:    toItemResponses(alerts.OutOfStock, names, reference),
		Expired:       toItemResponses(alerts.Expired, names, reference),
		Total:         alerts.Total,
	})
}

// Consumption handles GET /api/v1/reports/consumption
// @Summary      Seven-day consumption
// @Description  Suma de movimientos "Usado" y "Descartado" por día durante los 7 días que terminan en el día de referencia.
// @Tags         reports
// @Produce      json
// @Param        date  query     string  false  "Día de referencia (YYYY-MM-DD), por defecto hoy"
// @Success      200   {object}  ConsumptionResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /reports/consumption [get]
func (h *ReportHandler) Consumption(c *gin.Context) {
	reference, ok := h.referenceDate(c)
	if !ok {
		return
	}

	days := reports.AggregateConsumption(h.store.Movements(c.Request.Context()), reference)
	resp := ConsumptionResponse{
		ReferenceDate: reference.Format(time.DateOnly),
		Days:          make([]DailyConsumptionResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, DailyConsumptionResponse{
			Date:  d.Date.Format(time.DateOnly),
			Label: d.Label,
			Total: d.Total,
		})
	}
	c.JSON(http.StatusOK, resp)
}
