package recipes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/cache"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// MaxRecipes is the most suggestions returned for one request
const MaxRecipes = 3

// UserMessage is shown to the user whenever suggestions cannot be produced
const UserMessage = "Lo siento, no pude obtener recetas en este momento. Por favor, verifica tu clave de API e inténtalo de nuevo."

const promptTemplate = `Basado en los siguientes ingredientes, sugiere hasta 3 recetas sencillas. Para cada receta, enumera solo los ingredientes de mi lista que se necesitan y proporciona instrucciones sencillas.

Ingredientes: %s

Responde únicamente con JSON con el formato {"recipes": [{"recipeName": "nombre de la receta", "ingredients": ["ingrediente"], "instructions": ["paso"]}]}.`

// ErrRecipesUnavailable hides the cause of any failed suggestion request
var ErrRecipesUnavailable = errors.New("recipe suggestions unavailable")

// Recipe is a single suggestion returned by the model
type Recipe struct {
	RecipeName   string   `json:"recipeName"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// Options tunes the model call
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	CacheTTL    time.Duration
}

// Client asks a language model for recipes built from inventory item names
type Client struct {
	model  llms.Model
	cache  cache.Cache
	opts   Options
	logger *zap.Logger
}

// NewClient creates a recipe client. A nil cache disables result caching.
func NewClient(model llms.Model, c cache.Cache, opts Options, logger *zap.Logger) *Client {
	if opts.Temperature == 0 {
		opts.Temperature = 0.7
	}
	return &Client{
		model:  model,
		cache:  c,
		opts:   opts,
		logger: logger,
	}
}

type suggestion struct {
	recipes []Recipe
	err     error
}

// Suggest returns up to MaxRecipes recipes for the given ingredients. An empty
// list returns no recipes without contacting the model. If ctx ends first the
// pending answer is discarded and ctx.Err() is returned.
func (c *Client) Suggest(ctx context.Context, ingredients []string) ([]Recipe, error) {
	if len(ingredients) == 0 {
		return []Recipe{}, nil
	}

	key := CacheKey(ingredients)
	if c.cache != nil {
		var cached []Recipe
		if err := cache.GetJSON(ctx, c.cache, key, &cached); err == nil {
			c.logger.Debug("Recipe suggestions served from cache", zap.String("key", key))
			return cached, nil
		}
	}

	done := make(chan suggestion, 1)
	go func() {
		recipes, err := c.generate(ctx, ingredients)
		done <- suggestion{recipes: recipes, err: err}
	}()

	select {
	case <-ctx.Done():
		c.logger.Info("Recipe request abandoned", zap.Error(ctx.Err()))
		return nil, ctx.Err()
	case res := <-done:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if res.err != nil {
			c.logger.Error("Failed to fetch recipe suggestions",
				zap.Int("ingredients", len(ingredients)),
				zap.Error(res.err),
			)
			return nil, ErrRecipesUnavailable
		}
		if c.cache != nil {
			if err := cache.SetJSON(ctx, c.cache, key, res.recipes, c.opts.CacheTTL); err != nil {
				c.logger.Warn("Failed to cache recipe suggestions", zap.Error(err))
			}
		}
		return res.recipes, nil
	}
}

func (c *Client) generate(ctx context.Context, ingredients []string) ([]Recipe, error) {
	options := []llms.CallOption{
		llms.WithTemperature(c.opts.Temperature),
		llms.WithJSONMode(),
	}
	if c.opts.Model != "" {
		options = append(options, llms.WithModel(c.opts.Model))
	}
	if c.opts.MaxTokens > 0 {
		options = append(options, llms.WithMaxTokens(c.opts.MaxTokens))
	}

	response, err := c.model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, BuildPrompt(ingredients)),
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipes: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return nil, errors.New("empty response from model")
	}

	return ParseRecipes(response.Choices[0].Content)
}

// BuildPrompt renders the request sent to the model
func BuildPrompt(ingredients []string) string {
	return fmt.Sprintf(promptTemplate, strings.Join(ingredients, ", "))
}

// ParseRecipes accepts a bare JSON array or an object holding it under
// "recipes", optionally wrapped in a markdown code fence.
func ParseRecipes(text string) ([]Recipe, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("empty model output")
	}

	var recipes []Recipe
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &recipes); err != nil {
			return nil, fmt.Errorf("failed to parse recipes: %w", err)
		}
	} else {
		var wrapped struct {
			Recipes []Recipe `json:"recipes"`
		}
		if err := json.Unmarshal([]byte(text), &wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse recipes: %w", err)
		}
		if wrapped.Recipes == nil {
			return nil, errors.New("model output has no recipes field")
		}
		recipes = wrapped.Recipes
	}

	if len(recipes) > MaxRecipes {
		recipes = recipes[:MaxRecipes]
	}
	return recipes, nil
}

// CacheKey identifies an ingredient set regardless of order and case
func CacheKey(ingredients []string) string {
	normalized := make([]string, len(ingredients))
	for i, name := range ingredients {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
	}
	sort.Strings(normalized)

	sum := sha256.Sum256([]byte(strings.Join(normalized, "\n")))
	return "recipes:" + hex.EncodeToString(sum[:])
}
