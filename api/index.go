package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wemovies/config"
	"wemovies/libs"
	"wemovies/models"
	"wemovies/routes"
	"wemovies/services"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

// initApp builds the engine once per warm instance. Sessions live only as
// long as the instance does.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		cfg := config.AppConfig
		if err := libs.InitLogger(cfg.AppEnv); err != nil {
			initErr = err
			return
		}
		for _, w := range cfg.Warnings {
			libs.Log.Warn(w)
		}

		catalog := services.NewCatalogClient(cfg.CatalogURL, cfg.CatalogHTTPTimeout)
		sessions := services.NewSessionStore(catalog, cfg.CatalogMinLoading, cfg.SessionMax)
		router, initErr = routes.NewRouter(cfg, sessions)
		if initErr != nil {
			libs.Log.Error("failed to build router", zap.Error(initErr))
		}
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
			Error:   initErr.Error(),
		})
		return
	}
	router.ServeHTTP(w, r)
}
