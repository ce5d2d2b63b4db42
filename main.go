package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wemovies/config"
	_ "wemovies/docs"
	"wemovies/libs"
	"wemovies/routes"
	"wemovies/services"
)

const janitorInterval = 10 * time.Minute

// @title WeMovies API
// @version 1.0
// @description Movie storefront: catalog, per-session cart and checkout.
// @BasePath /
func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	if err := libs.InitLogger(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer libs.SyncLogger()
	for _, w := range cfg.Warnings {
		libs.Log.Warn(w)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog := services.NewCatalogClient(cfg.CatalogURL, cfg.CatalogHTTPTimeout)
	sessions := services.NewSessionStore(catalog, cfg.CatalogMinLoading, cfg.SessionMax)
	go sessions.RunJanitor(ctx, janitorInterval, cfg.SessionIdleTTL)

	router, err := routes.NewRouter(cfg, sessions)
	if err != nil {
		libs.Log.Fatal("failed to build router", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		// Event streams watch the request context; cancelling ctx ends them.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		libs.Log.Info("server starting",
			zap.String("addr", httpServer.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("catalog_url", cfg.CatalogURL),
			zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			libs.Log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	libs.Log.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		libs.Log.Error("HTTP server shutdown", zap.Error(err))
	}
	libs.Log.Info("HTTP server stopped", zap.Int("sessions_dropped", sessions.Len()))
}
