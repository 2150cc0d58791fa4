package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/recipes"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	apierrors "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
)

func toItemResponse(item domain.InventoryItem, locationNames map[int64]string, reference time.Time) ItemResponse {
	resp := ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		FoodType:         string(item.FoodType),
		Brand:            item.Brand,
		DateAdded:        item.DateAdded.Format(time.DateOnly),
		Quantity:         item.Quantity,
		Unit:             string(item.Unit),
		LocationID:       item.LocationID,
		LocationName:     locationNames[item.LocationID],
		ExpirationStatus: string(item.ExpirationStatus(reference)),
	}
	if item.ExpirationDate != nil {
		exp := item.ExpirationDate.Format(time.DateOnly)
		days := domain.DaysUntil(reference, *item.ExpirationDate)
		resp.ExpirationDate = &exp
		resp.DaysUntilExpiration = &days
	}
	return resp
}

func toItemResponses(items []domain.InventoryItem, locationNames map[int64]string, reference time.Time) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item, locationNames, reference))
	}
	return out
}

func toMovementResponse(m domain.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ItemID:         m.ItemID,
		ItemName:       m.ItemName,
		Type:           string(m.Type),
		QuantityChange: m.QuantityChange,
		Timestamp:      m.Timestamp.Format(time.RFC3339),
	}
}

func toMutationResponse(result *repository.MutationResult, locationNames map[int64]string, reference time.Time) MutationResponse {
	resp := MutationResponse{Item: toItemResponse(*result.Item, locationNames, reference)}
	if result.Movement != nil {
		movement := toMovementResponse(*result.Movement)
		resp.Movement = &movement
	}
	return resp
}

func toLocationResponse(l domain.Location) LocationResponse {
	return LocationResponse{ID: l.ID, Name: l.Name}
}

func toRecipeResponses(list []recipes.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, RecipeResponse{
			RecipeName:   r.RecipeName,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
		})
	}
	return out
}

func locationNameIndex(locations []domain.Location) map[int64]string {
	names := make(map[int64]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, apierrors.NewInvalidRequest("invalid "+param, c.Param(param)))
		return 0, false
	}
	return id, true
}

// parseDate reads an optional YYYY-MM-DD value in loc
func parseDate(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, *value, loc)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// abortWithError hands the error to ErrorHandler
func abortWithError(c *gin.Context, err *apierrors.StandardError) {
	_ = c.Error(err)
	c.Abort()
}

// toStandardError maps domain errors to API errors
func toStandardError(err error, itemID, locationID int64) *apierrors.StandardError {
	var stdErr *apierrors.StandardError
	switch {
	case errors.As(err, &stdErr):
		return stdErr
	case errors.Is(err, domain.ErrItemNotFound):
		return apierrors.NewItemNotFound(itemID)
	case errors.Is(err, domain.ErrLocationNotFound):
		return apierrors.NewLocationNotFound(locationID)
	case errors.Is(err, domain.ErrLocationInUse):
		return apierrors.NewLocationInUse(locationID)
	case errors.Is(err, domain.ErrNegativeQuantity):
		return apierrors.NewStandardError(apierrors.CodeInvalidQuantity, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidName):
		return apierrors.NewValidationError(err.Error(), "name")
	case errors.Is(err, domain.ErrInvalidFoodType):
		return apierrors.NewValidationError(err.Error(), "food_type")
	case errors.Is(err, domain.ErrInvalidUnit):
		return apierrors.NewValidationError(err.Error(), "unit")
	default:
		return apierrors.NewInternalError("internal server error", err)
	}
}
