package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/handlers"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/listener"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/logger"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting inventory event listener",
		zap.String("environment", cfg.Environment),
		zap.Strings("kafka_brokers", cfg.KafkaBrokers),
		zap.String("kafka_group_id", cfg.KafkaGroupID),
	)

	if !cfg.KafkaEnabled {
		appLogger.Fatal("The listener needs Kafka, set KAFKA_ENABLED=true")
	}

	appLogger.Info("📡 Kafka Configuration",
		zap.String("topic_items", cfg.KafkaTopicItems),
		zap.String("topic_movements", cfg.KafkaTopicMovements),
		zap.String("topic_locations", cfg.KafkaTopicLocations),
		zap.Int("max_retries", cfg.ListenerRetries),
		zap.Int("retry_delay_ms", cfg.ListenerBackoffMs),
	)

	projection := listener.NewProjection()

	appLogger.Info("🔧 Initializing Kafka consumer...")
	consumer, err := listener.NewConsumer(cfg, projection, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Kafka consumer", zap.Error(err))
	}
	defer consumer.Close()
	appLogger.Info("✅ Kafka consumer initialized successfully")

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))

	auditHandler := handlers.NewAuditHandler(projection)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "home-inventory-listener"})
		})
		v1.GET("/audit/summary", auditHandler.Summary)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ListenerPort,
		Handler: router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 2)
	go func() {
		appLogger.Info("📨 Starting Kafka consumer...")
		if err := consumer.Start(ctx); err != nil {
			errChan <- err
		}
	}()
	go func() {
		appLogger.Info("Listening", zap.String("port", cfg.ListenerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		appLogger.Error("Listener stopped unexpectedly", zap.Error(err))
	case sig := <-quit:
		appLogger.Info("Shutting down listener", zap.String("signal", sig.String()))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("HTTP server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Listener exited")
}
