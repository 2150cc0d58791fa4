package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/devproxy"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/logger"

	"go.uber.org/zap"
)

// Local server for the dashboard page: static files plus a proxy to the
// inventory API and the event listener, so the browser sees one origin.
func main() {
	cfg := config.Load()

	port := flag.String("port", "8000", "Puerto del servidor HTTP")
	dir := flag.String("dir", ".", "Directorio a servir")
	apiURL := flag.String("api", "http://localhost:"+cfg.Port, "URL del API de inventario")
	listenerURL := flag.String("listener", "http://localhost:"+cfg.ListenerPort, "URL del listener de eventos")
	flag.Parse()

	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	absDir, err := filepath.Abs(*dir)
	if err != nil {
		appLogger.Fatal("Failed to resolve static directory", zap.Error(err))
	}
	if _, err := os.Stat(absDir); os.IsNotExist(err) {
		appLogger.Fatal("Static directory does not exist", zap.String("dir", absDir))
	}

	handler, err := devproxy.NewHandler(devproxy.Targets{API: *apiURL, Listener: *listenerURL}, absDir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create proxy", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("🚀 Dashboard server started",
			zap.String("dir", absDir),
			zap.String("url", "http://localhost:"+*port),
			zap.String("api", *apiURL),
			zap.String("listener", *listenerURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Warn("Dashboard server forced to shutdown", zap.Error(err))
	}
}
