// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trustbites/config"
	"trustbites/internal/delivery/api/middleware"
	"trustbites/internal/delivery/api/router/handler"
	"trustbites/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	AccountHandler    *handler.AccountHandler
	NavigationHandler *handler.NavigationHandler
	PlaceHandler      *handler.PlaceHandler
	MapHandler        *handler.MapHandler
	FeedHandler       *handler.FeedHandler
	SessionMiddleware *middleware.SessionMiddleware
	Registry          *prometheus.Registry
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	accountHandler    *handler.AccountHandler
	navigationHandler *handler.NavigationHandler
	placeHandler      *handler.PlaceHandler
	mapHandler        *handler.MapHandler
	feedHandler       *handler.FeedHandler
	sessionMiddleware *middleware.SessionMiddleware
	registry          *prometheus.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		accountHandler:    params.AccountHandler,
		navigationHandler: params.NavigationHandler,
		placeHandler:      params.PlaceHandler,
		mapHandler:        params.MapHandler,
		feedHandler:       params.FeedHandler,
		sessionMiddleware: params.SessionMiddleware,
		registry:          params.Registry,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.NewHandler(r.registry)))

	apiV1 := e.Group("/api/v1")
	authenticate := r.sessionMiddleware.Authenticate
	signedIn := r.sessionMiddleware.RequireSignedIn

	// Opening a session is the only call without a token
	apiV1.POST("/sessions", r.sessionHandler.Open)
	apiV1.DELETE("/sessions", r.sessionHandler.Close, authenticate)
	apiV1.GET("/navigation", r.navigationHandler.Current, authenticate)

	authGroup := apiV1.Group("/auth", authenticate)
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Everything below needs a signed-in account
	navigationGroup := apiV1.Group("/navigation", authenticate, signedIn)
	{
		navigationGroup.PUT("", r.navigationHandler.Navigate)
		navigationGroup.POST("/edit/:id", r.navigationHandler.BeginEdit)
		navigationGroup.DELETE("/edit", r.navigationHandler.CancelEdit)
	}

	profileGroup := apiV1.Group("/profile", authenticate, signedIn)
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
		profileGroup.PUT("", r.accountHandler.UpdateProfile)
		profileGroup.PUT("/avatar", r.accountHandler.UpdateAvatar)
	}

	placesGroup := apiV1.Group("/places", authenticate, signedIn)
	{
		placesGroup.GET("", r.placeHandler.ListPlaces)
		placesGroup.POST("", r.placeHandler.CreatePlace)
		placesGroup.GET("/tags", r.placeHandler.ListTags)
		placesGroup.GET("/:id", r.placeHandler.GetPlace)
		placesGroup.PUT("/:id", r.placeHandler.UpdatePlace)
		placesGroup.DELETE("/:id", r.placeHandler.DeletePlace)
		placesGroup.GET("/:id/qr", r.placeHandler.ShareQR)
	}

	mapGroup := apiV1.Group("/map", authenticate, signedIn)
	{
		mapGroup.GET("", r.mapHandler.View)
		mapGroup.POST("/click", r.mapHandler.SelectPoint)
		mapGroup.DELETE("/click", r.mapHandler.ClearPoint)
		mapGroup.POST("/pins", r.mapHandler.PinFromMap)
		mapGroup.GET("/nearby", r.mapHandler.Nearby)
	}

	apiV1.GET("/feed", r.feedHandler.ListRecent, authenticate, signedIn)
}
