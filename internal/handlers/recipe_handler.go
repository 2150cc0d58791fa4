package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/recipes"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	apierrors "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusClientClosedRequest is logged when the caller goes away mid-request
const statusClientClosedRequest = 499

// RecipeSuggester produces recipes from ingredient names
type RecipeSuggester interface {
	Suggest(ctx context.Context, ingredients []string) ([]recipes.Recipe, error)
}

type RecipeHandler struct {
	logger    *zap.Logger
	store     *repository.InventoryStore
	suggester RecipeSuggester
	metrics   *metrics.Metrics
	timeout   time.Duration
}

// NewRecipeHandler creates the handler. A nil suggester answers 503.
func NewRecipeHandler(logger *zap.Logger, store *repository.InventoryStore, suggester RecipeSuggester, m *metrics.Metrics, timeout time.Duration) *RecipeHandler {
	return &RecipeHandler{
		logger:    logger,
		store:     store,
		suggester: suggester,
		metrics:   m,
		timeout:   timeout,
	}
}

// SuggestRecipes handles POST /api/v1/recipes/suggestions
// @Summary      Suggest recipes from the inventory
// @Description  Envía los nombres de todos los alimentos al modelo generativo y devuelve hasta 3 recetas. Sin alimentos devuelve una lista vacía sin llamar al modelo.
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  RecipeSuggestionsResponse
// @Failure      502  {object}  ErrorResponse  "No se pudieron obtener recetas"
// @Failure      503  {object}  ErrorResponse  "Sugerencias deshabilitadas (sin clave de API)"
// @Router       /recipes/suggestions [post]
func (h *RecipeHandler) SuggestRecipes(c *gin.Context) {
	if h.suggester == nil {
		h.metrics.ObserveRecipeRequest(metrics.RecipeOutcomeDisabled, 0)
		abortWithError(c, apierrors.NewServiceUnavailable("recipe suggestions are disabled: set LLM_API_KEY"))
		return
	}

	ingredients := h.store.ListItemNames(c.Request.Context())

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	list, err := h.suggester.Suggest(ctx, ingredients)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		h.metrics.ObserveRecipeRequest(metrics.RecipeOutcomeSuccess, elapsed)
		c.JSON(http.StatusOK, RecipeSuggestionsResponse{
			Ingredients: ingredients,
			Recipes:     toRecipeResponses(list),
		})
	case errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil:
		h.metrics.ObserveRecipeRequest(metrics.RecipeOutcomeCancelled, elapsed)
		h.logger.Info("Client cancelled recipe request", zap.Duration("elapsed", elapsed))
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		h.metrics.ObserveRecipeRequest(metrics.RecipeOutcomeFailure, elapsed)
		h.logger.Warn("Recipe suggestions failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		abortWithError(c, apierrors.NewRecipeServiceError(recipes.UserMessage))
	}
}
