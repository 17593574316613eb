// cmd/activities-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"activities-api/internal/common/config"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/internal/server"
	"activities-api/pkg/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting activities server",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	reg, err := buildRegistry(cfg)
	if err != nil {
		zapLog.Fatal("registry seed failed", zap.Error(err))
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(reg, log, obs, cfg.Metrics)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("forced shutdown", zap.Error(err))
	}

	zapLog.Info("server exited")
}

// buildRegistry seeds from the configured external catalog when set,
// otherwise from the embedded one.
func buildRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.Registry.SeedPath != "" {
		catalog, err := registry.LoadCatalog(cfg.Registry.SeedPath)
		if err != nil {
			return nil, err
		}
		return registry.New(catalog), nil
	}
	return registry.NewFromSeed()
}
