package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/commands"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/events"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	apierrors "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	eventRecorder
	store    *repository.InventoryStore
	location *time.Location
}

func NewInventoryHandler(logger *zap.Logger, store *repository.InventoryStore, eventBus events.EventPublisher, m *metrics.Metrics, loc *time.Location) *InventoryHandler {
	return &InventoryHandler{
		eventRecorder: eventRecorder{logger: logger, eventBus: eventBus, metrics: m},
		store:         store,
		location:      loc,
	}
}

func (h *InventoryHandler) now() time.Time {
	return h.store.Now().In(h.location)
}

func (h *InventoryHandler) locationNames(c *gin.Context) map[int64]string {
	return locationNameIndex(h.store.ListLocations(c.Request.Context()))
}

// ListItems handles GET /api/v1/items
// @Summary      List inventory items
// @Description  Lista todos los alimentos ordenados por nombre, con su estado de caducidad calculado para hoy.
// @Tags         items
// @Produce      json
// @Success      200  {array}   ItemResponse
// @Router       /items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items := h.store.ListItems(c.Request.Context())
	c.JSON(http.StatusOK, toItemResponses(items, h.locationNames(c), h.now()))
}

// GetItem handles GET /api/v1/items/:id
// @Summary      Get an inventory item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  ItemResponse
// @Failure      400  {object}  ErrorResponse  "ID inválido"
// @Failure      404  {object}  ErrorResponse  "Alimento no encontrado"
// @Router       /items/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, toStandardError(err, id, 0))
		return
	}
	c.JSON(http.StatusOK, toItemResponse(*item, h.locationNames(c), h.now()))
}

// CreateItem handles POST /api/v1/items
// @Summary      Add an inventory item
// @Description  Registra un alimento y un movimiento "Añadido" por su cantidad inicial.
// @Description  **Idempotencia**: con X-Request-ID, un reintento devuelve la respuesta guardada sin duplicar el movimiento.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string             false  "Request ID para idempotencia"
// @Param        request       body      CreateItemRequest  true   "Datos del alimento"
// @Success      201           {object}  MutationResponse   "Alimento creado"
// @Success      204           {string}  string  "Modo tolerante: ubicación inexistente, no se hizo nada"
// @Failure      400           {object}  ErrorResponse      "Request inválido"
// @Failure      404           {object}  ErrorResponse      "Ubicación no encontrada"
// @Router       /items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request", zap.Error(err))
		abortWithError(c, apierrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	details, stdErr := h.parseDetails(req.Name, req.FoodType, req.Brand, req.ExpirationDate, req.Unit, req.LocationID)
	if stdErr != nil {
		abortWithError(c, stdErr)
		return
	}

	cmd := commands.AddItemCommand{
		Name:           details.Name,
		FoodType:       details.FoodType,
		Brand:          details.Brand,
		ExpirationDate: details.ExpirationDate,
		Quantity:       req.Quantity,
		Unit:           details.Unit,
		LocationID:     details.LocationID,
	}

	result, err := h.store.AddItem(c.Request.Context(), cmd)
	if err != nil {
		abortWithError(c, toStandardError(err, 0, cmd.LocationID))
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}

	item := result.Item
	h.publish(c.Request.Context(), events.ItemAddedEvent{
		ItemID:     item.ID,
		Name:       item.Name,
		FoodType:   item.FoodType,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		LocationID: item.LocationID,
		OccurredAt: result.Movement.Timestamp,
	})
	h.recordMovement(c.Request.Context(), result.Movement)

	h.logger.Info("Item added", zap.Int64("item_id", item.ID), zap.String("name", item.Name))
	c.JSON(http.StatusCreated, toMutationResponse(result, h.locationNames(c), h.now()))
}

// UpdateItem handles PUT /api/v1/items/:id
// @Summary      Update an inventory item
// @Description  Reemplaza nombre, tipo, marca, caducidad, unidad y ubicación. No cambia la cantidad ni registra movimientos.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string             false  "Request ID para idempotencia"
// @Param        id            path      int                true   "Item ID"
// @Param        request       body      UpdateItemRequest  true   "Nuevos datos"
// @Success      200           {object}  ItemResponse
// @Success      204           {string}  string  "Modo tolerante: alimento o ubicación inexistente"
// @Failure      400           {object}  ErrorResponse
// @Failure      404           {object}  ErrorResponse
// @Router       /items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apierrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	details, stdErr := h.parseDetails(req.Name, req.FoodType, req.Brand, req.ExpirationDate, req.Unit, req.LocationID)
	if stdErr != nil {
		abortWithError(c, stdErr)
		return
	}

	item, err := h.store.UpdateItem(c.Request.Context(), commands.UpdateItemCommand{
		ID:             id,
		Name:           details.Name,
		FoodType:       details.FoodType,
		Brand:          details.Brand,
		ExpirationDate: details.ExpirationDate,
		Unit:           details.Unit,
		LocationID:     details.LocationID,
	})
	if err != nil {
		abortWithError(c, toStandardError(err, id, details.LocationID))
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}

	h.publish(c.Request.Context(), events.ItemUpdatedEvent{
		ItemID:         item.ID,
		Name:           item.Name,
		FoodType:       item.FoodType,
		Brand:          item.Brand,
		ExpirationDate: item.ExpirationDate,
		Unit:           item.Unit,
		LocationID:     item.LocationID,
		OccurredAt:     h.store.Now(),
	})

	h.logger.Info("Item updated", zap.Int64("item_id", item.ID))
	c.JSON(http.StatusOK, toItemResponse(*item, h.locationNames(c), h.now()))
}

// AdjustQuantity handles POST /api/v1/items/:id/adjust
// @Summary      Set the quantity of an item
// @Description  Fija la cantidad absoluta. Un aumento registra "Añadido", una disminución "Usado" y sin cambio no se registra nada.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string                 false  "Request ID para idempotencia"
// @Param        id            path      int                    true   "Item ID"
// @Param        request       body      AdjustQuantityRequest  true   "Cantidad nueva"
// @Success      200           {object}  MutationResponse
// @Success      204           {string}  string  "Modo tolerante: alimento inexistente o cantidad negativa"
// @Failure      400           {object}  ErrorResponse  "Cantidad negativa"
// @Failure      404           {object}  ErrorResponse
// @Router       /items/{id}/adjust [post]
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apierrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	result, err := h.store.AdjustQuantity(c.Request.Context(), commands.AdjustQuantityCommand{ID: id, Quantity: *req.Quantity})
	if err != nil {
		if stdErr := toStandardError(err, id, 0); stdErr.Code == apierrors.CodeInvalidQuantity {
			abortWithError(c, apierrors.NewInvalidQuantity(*req.Quantity))
		} else {
			abortWithError(c, stdErr)
		}
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}

	if result.Movement != nil {
		h.publish(c.Request.Context(), events.QuantityAdjustedEvent{
			ItemID:      result.Item.ID,
			NewQuantity: result.Item.Quantity,
			OccurredAt:  result.Movement.Timestamp,
		})
		h.recordMovement(c.Request.Context(), result.Movement)
	}

	h.logger.Info("Quantity adjusted",
		zap.Int64("item_id", id),
		zap.Int("quantity", result.Item.Quantity),
		zap.Bool("movement", result.Movement != nil),
	)
	c.JSON(http.StatusOK, toMutationResponse(result, h.locationNames(c), h.now()))
}

// DeleteItem handles DELETE /api/v1/items/:id
// @Summary      Discard an inventory item
// @Description  Registra un movimiento "Descartado" por la cantidad restante (aunque sea 0) y elimina el alimento.
// @Tags         items
// @Produce      json
// @Param        X-Request-ID  header    string  false  "Request ID para idempotencia"
// @Param        id            path      int     true   "Item ID"
// @Success      200           {object}  MutationResponse  "Alimento eliminado con su movimiento"
// @Success      204           {string}  string  "Modo tolerante: alimento inexistente"
// @Failure      404           {object}  ErrorResponse
// @Router       /items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.store.DeleteItem(c.Request.Context(), commands.DeleteItemCommand{ID: id})
	if err != nil {
		abortWithError(c, toStandardError(err, id, 0))
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}

	h.publish(c.Request.Context(), events.ItemDeletedEvent{
		ItemID:     result.Item.ID,
		Name:       result.Item.Name,
		OccurredAt: result.Movement.Timestamp,
	})
	h.recordMovement(c.Request.Context(), result.Movement)

	h.logger.Info("Item discarded", zap.Int64("item_id", id), zap.Int("quantity", result.Item.Quantity))
	c.JSON(http.StatusOK, toMutationResponse(result, h.locationNames(c), h.now()))
}

// ListMovements handles GET /api/v1/movements
// @Summary      Movement history
// @Description  Historial de movimientos del más reciente al más antiguo. Los movimientos de alimentos eliminados se conservan.
// @Tags         movements
// @Produce      json
// @Param        item_id  query     int  false  "Filtrar por alimento"
// @Success      200      {array}   MovementResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var itemID int64
	if raw := c.Query("item_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			abortWithError(c, apierrors.NewInvalidRequest("invalid item_id", raw))
			return
		}
		itemID = parsed
	}

	history := h.store.History(c.Request.Context(), itemID)
	resp := make([]MovementResponse, 0, len(history))
	for _, m := range history {
		resp = append(resp, toMovementResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// Catalog handles GET /api/v1/catalog
// @Summary      Accepted food types and units
// @Tags         items
// @Produce      json
// @Success      200  {object}  CatalogResponse
// @Router       /catalog [get]
func (h *InventoryHandler) Catalog(c *gin.Context) {
	resp := CatalogResponse{}
	for _, ft := range domain.FoodTypes() {
		resp.FoodTypes = append(resp.FoodTypes, string(ft))
	}
	for _, u := range domain.Units() {
		resp.Units = append(resp.Units, string(u))
	}
	c.JSON(http.StatusOK, resp)
}

// parseDetails validates the enumerations and dates of an item request
func (h *InventoryHandler) parseDetails(name, foodType, brand string, expiration *string, unit string, locationID int64) (domain.ItemDetails, *apierrors.StandardError) {
	ft, err := domain.ParseFoodType(foodType)
	if err != nil {
		return domain.ItemDetails{}, apierrors.NewValidationError(err.Error(), "food_type")
	}
	u, err := domain.ParseUnit(unit)
	if err != nil {
		return domain.ItemDetails{}, apierrors.NewValidationError(err.Error(), "unit")
	}
	exp, err := parseDate(expiration, h.location)
	if err != nil {
		return domain.ItemDetails{}, apierrors.NewValidationError("expiration_date must be YYYY-MM-DD", "expiration_date")
	}
	return domain.ItemDetails{
		Name:           name,
		FoodType:       ft,
		Brand:          brand,
		ExpirationDate: exp,
		Unit:           u,
		LocationID:     locationID,
	}, nil
}
