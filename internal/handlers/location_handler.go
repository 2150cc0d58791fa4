package handlers

import (
	"net/http"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/commands"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/events"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	apierrors "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LocationHandler struct {
	eventRecorder
	store *repository.InventoryStore
}

func NewLocationHandler(logger *zap.Logger, store *repository.InventoryStore, eventBus events.EventPublisher, m *metrics.Metrics) *LocationHandler {
	return &LocationHandler{
		eventRecorder: eventRecorder{logger: logger, eventBus: eventBus, metrics: m},
		store:         store,
	}
}

// ListLocations handles GET /api/v1/locations
// @Summary      List storage locations
// @Tags         locations
// @Produce      json
// @Success      200  {array}  LocationResponse
// @Router       /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations := h.store.ListLocations(c.Request.Context())
	resp := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, toLocationResponse(l))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateLocation handles POST /api/v1/locations
// @Summary      Add a storage location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string           false  "Request ID para idempotencia"
// @Param        request       body      LocationRequest  true   "Nombre"
// @Success      201           {object}  LocationResponse
// @Failure      400           {object}  ErrorResponse  "Nombre vacío"
// @Router       /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apierrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	location, err := h.store.CreateLocation(c.Request.Context(), commands.CreateLocationCommand{Name: req.Name})
	if err != nil {
		abortWithError(c, toStandardError(err, 0, 0))
		return
	}

	h.publish(c.Request.Context(), events.LocationCreatedEvent{
		LocationID: location.ID,
		Name:       location.Name,
		OccurredAt: h.store.Now(),
	})

	h.logger.Info("Location created", zap.Int64("location_id", location.ID), zap.String("name", location.Name))
	c.JSON(http.StatusCreated, toLocationResponse(*location))
}

// RenameLocation handles PUT /api/v1/locations/:id
// @Summary      Rename a storage location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string           false  "Request ID para idempotencia"
// @Param        id            path      int              true   "Location ID"
// @Param        request       body      LocationRequest  true   "Nuevo nombre"
// @Success      200           {object}  LocationResponse
// @Success      204           {string}  string  "Modo tolerante: ubicación inexistente"
// @Failure      400           {object}  ErrorResponse
// @Failure      404           {object}  ErrorResponse
// @Router       /locations/{id} [put]
func (h *LocationHandler) RenameLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apierrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	location, err := h.store.RenameLocation(c.Request.Context(), commands.RenameLocationCommand{ID: id, Name: req.Name})
	if err != nil {
		abortWithError(c, toStandardError(err, 0, id))
		return
	}
	if location == nil {
		c.Status(http.StatusNoContent)
		return
	}

	h.publish(c.Request.Context(), events.LocationRenamedEvent{
		LocationID: location.ID,
		Name:       location.Name,
		OccurredAt: h.store.Now(),
	})

	c.JSON(http.StatusOK, toLocationResponse(*location))
}

// DeleteLocation handles DELETE /api/v1/locations/:id
// @Summary      Delete a storage location
// @Description  Con la política "block" falla con 409 si algún alimento la usa. Con "reassign" mueve esos alimentos a "Sin ubicación".
// @Tags         locations
// @Produce      json
// @Param        X-Request-ID  header    string  false  "Request ID para idempotencia"
// @Param        id            path      int     true   "Location ID"
// @Success      200           {object}  LocationDeletionResponse
// @Success      204           {string}  string  "Modo tolerante: ubicación inexistente"
// @Failure      404           {object}  ErrorResponse
// @Failure      409           {object}  ErrorResponse  "Ubicación en uso"
// @Router       /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deletion, err := h.store.DeleteLocation(c.Request.Context(), commands.DeleteLocationCommand{ID: id})
	if err != nil {
		abortWithError(c, toStandardError(err, 0, id))
		return
	}
	if deletion == nil {
		c.Status(http.StatusNoContent)
		return
	}

	resp := LocationDeletionResponse{
		Location:          toLocationResponse(deletion.Location),
		ReassignedItemIDs: deletion.ReassignedIDs,
	}
	event := events.LocationDeletedEvent{
		LocationID:        deletion.Location.ID,
		Name:              deletion.Location.Name,
		ReassignedItemIDs: deletion.ReassignedIDs,
		OccurredAt:        h.store.Now(),
	}
	if deletion.Fallback != nil {
		fallback := toLocationResponse(*deletion.Fallback)
		resp.Fallback = &fallback
		event.FallbackLocationID = deletion.Fallback.ID
	}
	h.publish(c.Request.Context(), event)

	h.logger.Info("Location deleted",
		zap.Int64("location_id", id),
		zap.Int("reassigned", len(deletion.ReassignedIDs)),
	)
	c.JSON(http.StatusOK, resp)
}
