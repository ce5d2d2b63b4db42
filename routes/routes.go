package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wemovies/config"
	"wemovies/controllers"
	"wemovies/libs"
	"wemovies/middleware"
	"wemovies/services"
	"wemovies/templates"
)

// NewRouter builds the storefront engine: middleware, HTML templates and
// every route. Shared by the standalone server and the serverless handler.
func NewRouter(cfg *config.Config, sessions *services.SessionStore) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	router.SetHTMLTemplate(tmpl)

	SetupRoutes(router, sessions, cfg.SessionCookie, cfg.IsProduction())
	return router, nil
}

func SetupRoutes(router *gin.Engine, sessions *services.SessionStore, cookieName string, secureCookie bool) {
	catalogCtrl := &controllers.CatalogController{Sessions: sessions}
	cartCtrl := &controllers.CartController{}
	orderCtrl := &controllers.OrderController{}
	eventsCtrl := &controllers.EventsController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(libs.MetricsHandler()))

	app := router.Group("/")
	app.Use(middleware.SessionMiddleware(sessions, cookieName, secureCookie))
	{
		app.GET("/", catalogCtrl.Home)
		app.POST("/cart/items/:id", catalogCtrl.AddToCart)

		app.GET("/cart", cartCtrl.ShowCart)
		app.POST("/cart/items/:id/increase", cartCtrl.Increase)
		app.POST("/cart/items/:id/decrease", cartCtrl.Decrease)
		app.POST("/cart/items/:id/remove", cartCtrl.Remove)
		app.POST("/checkout", cartCtrl.Checkout)

		app.GET("/order-confirmed", orderCtrl.Confirmed)
		app.GET("/events", eventsCtrl.CartEvents)
	}

	api := router.Group("/api")
	api.Use(middleware.SessionMiddleware(sessions, cookieName, secureCookie))
	{
		api.GET("/catalog", catalogCtrl.GetCatalog)

		api.GET("/cart", cartCtrl.GetCart)
		api.DELETE("/cart", cartCtrl.ClearAPI)
		api.POST("/cart/items/:id", catalogCtrl.AddToCartAPI)
		api.POST("/cart/items/:id/increase", cartCtrl.IncreaseAPI)
		api.POST("/cart/items/:id/decrease", cartCtrl.DecreaseAPI)
		api.DELETE("/cart/items/:id", cartCtrl.RemoveAPI)
	}
}
