package handlers

// ErrorResponse represents an error response
// @Description Respuesta de error estándar
type ErrorResponse struct {
	// Error code
	Error string `json:"error" example:"ItemNotFound"`
	// Human-readable message
	Message string `json:"message" example:"item not found"`
	// Additional details (field, ids)
	Details string `json:"details,omitempty" example:"Item ID: 7"`
}

// CreateItemRequest represents the request body for adding an item
// @Description Alta de un alimento en el inventario
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required" example:"Leche entera"`
	FoodType string `json:"food_type" binding:"required" example:"Lacteos"`
	Brand    string `json:"brand" example:"Pascual"`
	// Expiration day (YYYY-MM-DD), optional
	ExpirationDate *string `json:"expiration_date" example:"2024-03-20"`
	// Initial quantity, at least 1
	Quantity   int    `json:"quantity" binding:"required,min=1" example:"2"`
	Unit       string `json:"unit" binding:"required" example:"L"`
	LocationID int64  `json:"location_id" binding:"required" example:"1"`
}

// UpdateItemRequest represents the request body for editing an item.
// Quantity is changed only through the adjust endpoint.
// @Description Edición de los datos de un alimento (no cambia la cantidad)
type UpdateItemRequest struct {
	Name           string  `json:"name" binding:"required" example:"Leche deslactosada"`
	FoodType       string  `json:"food_type" binding:"required" example:"Lacteos"`
	Brand          string  `json:"brand" example:"Pascual"`
	ExpirationDate *string `json:"expiration_date" example:"2024-03-25"`
	Unit           string  `json:"unit" binding:"required" example:"L"`
	LocationID     int64   `json:"location_id" binding:"required" example:"1"`
}

// AdjustQuantityRequest sets the absolute quantity of an item
// @Description Nueva cantidad absoluta (0 deja el alimento agotado)
type AdjustQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"1"`
}

// ItemResponse represents an inventory item
// @Description Alimento del inventario con su estado de caducidad
type ItemResponse struct {
	ID             int64   `json:"id" example:"7"`
	Name           string  `json:"name" example:"Leche entera"`
	FoodType       string  `json:"food_type" example:"Lacteos"`
	Brand          string  `json:"brand,omitempty" example:"Pascual"`
	ExpirationDate *string `json:"expiration_date,omitempty" example:"2024-03-20"`
	DateAdded      string  `json:"date_added" example:"2024-03-10"`
	Quantity       int     `json:"quantity" example:"2"`
	Unit           string  `json:"unit" example:"L"`
	LocationID     int64   `json:"location_id" example:"1"`
	LocationName   string  `json:"location_name" example:"Refrigerador"`
	// none, expired, expires_today, urgent, soon, ok
	ExpirationStatus string `json:"expiration_status" example:"soon"`
	// Days until expiration, negative when expired
	DaysUntilExpiration *int `json:"days_until_expiration,omitempty" example:"5"`
}

// MovementResponse represents a ledger entry
// @Description Movimiento de inventario (Añadido, Usado, Descartado)
type MovementResponse struct {
	ID             int64  `json:"id" example:"12"`
	ItemID         int64  `json:"item_id" example:"7"`
	ItemName       string `json:"item_name" example:"Leche entera"`
	Type           string `json:"type" example:"Usado"`
	QuantityChange int    `json:"quantity_change" example:"1"`
	Timestamp      string `json:"timestamp" example:"2024-03-10T18:30:00Z"`
}

// MutationResponse is returned by operations that may record a movement
// @Description Alimento resultante y el movimiento registrado, si lo hubo
type MutationResponse struct {
	Item     ItemResponse      `json:"item"`
	Movement *MovementResponse `json:"movement,omitempty"`
}

// LocationRequest represents the request body for creating or renaming a location
// @Description Nombre de la ubicación
type LocationRequest struct {
	Name string `json:"name" binding:"required" example:"Despensa"`
}

// LocationResponse represents a storage location
// @Description Ubicación de almacenamiento
type LocationResponse struct {
	ID   int64  `json:"id" example:"2"`
	Name string `json:"name" example:"Despensa"`
}

// LocationDeletionResponse describes a deleted location
// @Description Ubicación eliminada y alimentos reasignados a la ubicación de respaldo
type LocationDeletionResponse struct {
	Location          LocationResponse  `json:"location"`
	Fallback          *LocationResponse `json:"fallback,omitempty"`
	ReassignedItemIDs []int64           `json:"reassigned_item_ids,omitempty"`
}

// AlertsResponse represents the alert evaluation
// @Description Alimentos agotados y caducados. Total no elimina duplicados.
type AlertsResponse struct {
	ReferenceDate string         `json:"reference_date" example:"2024-03-10"`
	OutOfStock    []ItemResponse `json:"out_of_stock"`
	Expired       []ItemResponse `json:"expired"`
	Total         int            `json:"total" example:"3"`
}

// DailyConsumptionResponse is one day of the consumption report
type DailyConsumptionResponse struct {
	Date  string `json:"date" example:"2024-03-10"`
	Label string `json:"label" example:"10 mar"`
	Total int    `json:"total" example:"4"`
}

// ConsumptionResponse represents the 7-day consumption report
// @Description Consumo diario (Usado + Descartado) de los últimos 7 días, del más antiguo al más reciente
type ConsumptionResponse struct {
	ReferenceDate string                     `json:"reference_date" example:"2024-03-10"`
	Days          []DailyConsumptionResponse `json:"days"`
}

// RecipeResponse is one suggested recipe
type RecipeResponse struct {
	RecipeName   string   `json:"recipeName" example:"Tortilla de papas"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// RecipeSuggestionsResponse represents recipe suggestions
// @Description Hasta 3 recetas sugeridas a partir de los alimentos del inventario
type RecipeSuggestionsResponse struct {
	Ingredients []string         `json:"ingredients"`
	Recipes     []RecipeResponse `json:"recipes"`
}

// CatalogResponse lists the accepted food types and units
// @Description Valores válidos para food_type y unit
type CatalogResponse struct {
	FoodTypes []string `json:"food_types"`
	Units     []string `json:"units"`
}
