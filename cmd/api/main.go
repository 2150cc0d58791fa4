package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/cache"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/events"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/handlers"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/recipes"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/logger"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/docs" // Import docs for Swagger
)

// @title           Home Inventory API
// @version         1.0
// @description     API del inventario de alimentos del hogar: alimentos, ubicaciones, movimientos, reportes, recetas y exportación

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @schemes   http https
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Home Inventory service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
		zap.String("timezone", cfg.TimeZone),
	)

	policy, err := repository.ParseLocationDeletePolicy(cfg.LocationDeletePolicy)
	if err != nil {
		appLogger.Fatal("Invalid LOCATION_DELETE_POLICY", zap.Error(err))
	}

	appLogger.Info("📦 Store Configuration",
		zap.Bool("strict_mode", cfg.StrictMode),
		zap.String("location_delete_policy", string(policy)),
		zap.String("seed_file", cfg.SeedFile),
	)

	if cfg.KafkaEnabled {
		appLogger.Info("📡 Kafka Configuration",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_items", cfg.KafkaTopicItems),
			zap.String("topic_movements", cfg.KafkaTopicMovements),
			zap.String("topic_locations", cfg.KafkaTopicLocations),
			zap.String("client_id", cfg.KafkaClientID),
			zap.String("acks", cfg.KafkaAcks),
			zap.Int("retries", cfg.KafkaRetries),
		)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		appLogger.Fatal("Invalid TIMEZONE", zap.Error(err))
	}
	ctx := context.Background()

	// Store
	appLogger.Info("🔧 Initializing inventory store...")
	store := repository.NewInventoryStore(
		repository.NewMovementLedger(),
		repository.NewLocationRegistry(),
		repository.StoreOptions{
			Strict:               cfg.StrictMode,
			LocationDeletePolicy: policy,
			Clock:                func() time.Time { return time.Now().In(loc) },
		},
		appLogger,
	)

	var seed *config.Seed
	if cfg.SeedFile != "" {
		seed, err = config.LoadSeed(cfg.SeedFile)
		if err != nil {
			appLogger.Fatal("Failed to load seed file", zap.String("path", cfg.SeedFile), zap.Error(err))
		}
	}
	if err := store.ApplySeed(ctx, seed, loc); err != nil {
		appLogger.Fatal("Failed to seed inventory", zap.Error(err))
	}
	appLogger.Info("✅ Inventory store initialized successfully",
		zap.Int("locations", len(store.ListLocations(ctx))),
		zap.Int("items", len(store.ListItems(ctx))),
	)

	// Infrastructure
	appCache := cache.NewCache(cfg, appLogger)
	eventBus := events.NewEventPublisher(cfg, appLogger)
	appMetrics := metrics.New()

	var suggester handlers.RecipeSuggester
	model, err := recipes.NewModel(ctx, cfg)
	switch {
	case errors.Is(err, recipes.ErrClientDisabled):
		appLogger.Warn("⚠️ Recipe suggestions disabled", zap.String("reason", err.Error()))
	case err != nil:
		appLogger.Error("Failed to initialize recipe model, suggestions disabled", zap.Error(err))
	default:
		suggester = recipes.NewClient(model, appCache, recipes.Options{
			Model:     cfg.LLMModel,
			MaxTokens: cfg.LLMMaxTokens,
			CacheTTL:  cache.TTL(cfg.RecipeCacheTTL),
		}, appLogger)
		appLogger.Info("✅ Recipe suggestions enabled",
			zap.String("provider", cfg.LLMProvider),
			zap.String("model", cfg.LLMModel),
		)
	}

	// Router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.MetricsMiddleware(appMetrics))

	// Request ID middleware (must be early in the chain)
	router.Use(middleware.RequestIDMiddleware(appLogger))

	idempotencyTTL := cache.TTL(cfg.IdempotencyTTL)
	requestIDStore := middleware.NewCacheRequestIDStore(appCache)
	router.Use(middleware.IdempotencyMiddleware(requestIDStore, appLogger))
	router.Use(middleware.StoreResponseMiddleware(requestIDStore, appLogger, idempotencyTTL))

	// Renders c.Error results inside the response capture
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation and metrics
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	appLogger.Info("🔧 Initializing handlers...")
	inventoryHandler := handlers.NewInventoryHandler(appLogger, store, eventBus, appMetrics, loc)
	locationHandler := handlers.NewLocationHandler(appLogger, store, eventBus, appMetrics)
	reportHandler := handlers.NewReportHandler(appLogger, store, appMetrics, loc)
	recipeHandler := handlers.NewRecipeHandler(appLogger, store, suggester, appMetrics, time.Duration(cfg.LLMTimeout)*time.Second)
	exportHandler := handlers.NewExportHandler(appLogger, store)
	appLogger.Info("✅ Handlers initialized successfully")

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/catalog", inventoryHandler.Catalog)

		items := v1.Group("/items")
		{
			items.GET("", inventoryHandler.ListItems)
			items.POST("", inventoryHandler.CreateItem)
			items.GET("/:id", inventoryHandler.GetItem)
			items.PUT("/:id", inventoryHandler.UpdateItem)
			items.DELETE("/:id", inventoryHandler.DeleteItem)
			items.POST("/:id/adjust", inventoryHandler.AdjustQuantity)
		}

		v1.GET("/movements", inventoryHandler.ListMovements)

		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.ListLocations)
			locations.POST("", locationHandler.CreateLocation)
			locations.PUT("/:id", locationHandler.RenameLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
		}

		reportsGroup := v1.Group("/reports")
		{
			reportsGroup.GET("/alerts", reportHandler.Alerts)
			reportsGroup.GET("/consumption", reportHandler.Consumption)
		}

		v1.POST("/recipes/suggestions", recipeHandler.SuggestRecipes)

		exportGroup := v1.Group("/export")
		{
			exportGroup.GET("/xlsx", exportHandler.ExportSpreadsheet)
			exportGroup.GET("/pdf", exportHandler.ExportPDF)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Listening",
			zap.String("port", cfg.Port),
			zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if closer, ok := eventBus.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}

	appLogger.Info("Server exited")
}

// healthCheck godoc
// @Summary      Health check endpoint
// @Description  Verifica el estado del servicio.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "Servicio operativo"
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "home-inventory",
	})
}
