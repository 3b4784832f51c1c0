// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comerciaya/config"
	"comerciaya/internal/delivery/api/middleware"
	"comerciaya/internal/delivery/api/router/handler"
	"comerciaya/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BusinessHandler *handler.BusinessHandler
	OfferingHandler *handler.OfferingHandler
	RatingHandler   *handler.RatingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	businessHandler *handler.BusinessHandler
	offeringHandler *handler.OfferingHandler
	ratingHandler   *handler.RatingHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		businessHandler: params.BusinessHandler,
		offeringHandler: params.OfferingHandler,
		ratingHandler:   params.RatingHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify, authenticated)
		authGroup.POST("/logout", r.authHandler.Logout, authenticated)
	}

	meGroup := apiV1.Group("/users/me", authenticated)
	{
		meGroup.GET("", r.userHandler.GetProfile)
		meGroup.PUT("", r.userHandler.UpdateProfile)
		meGroup.POST("/photo", r.userHandler.UpdatePhoto)
	}

	// Static segments are registered before :id so they take priority.
	businessGroup := apiV1.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.Explore)
		businessGroup.GET("/categories", r.businessHandler.Categories)
		businessGroup.GET("/mine", r.businessHandler.ListMine, authenticated)
		businessGroup.POST("", r.businessHandler.Create, authenticated)
		businessGroup.GET("/:id", r.businessHandler.Get)
		businessGroup.PUT("/:id", r.businessHandler.Update, authenticated)
		businessGroup.DELETE("/:id", r.businessHandler.Delete, authenticated)
		businessGroup.POST("/:id/image", r.businessHandler.UpdateImage, authenticated)
		businessGroup.GET("/:id/qr", r.businessHandler.QRCode)
		businessGroup.GET("/:id/offerings", r.businessHandler.Offerings)
		businessGroup.GET("/:id/ratings", r.businessHandler.Ratings)
	}

	offeringGroup := apiV1.Group("/offerings")
	{
		offeringGroup.GET("/mine", r.offeringHandler.ListMine, authenticated)
		offeringGroup.POST("", r.offeringHandler.Create, authenticated)
		offeringGroup.GET("/:id", r.offeringHandler.Get)
		offeringGroup.PUT("/:id", r.offeringHandler.Update, authenticated)
		offeringGroup.DELETE("/:id", r.offeringHandler.Delete, authenticated)
		offeringGroup.POST("/:id/image", r.offeringHandler.UpdateImage, authenticated)
	}

	ratingGroup := apiV1.Group("/ratings", authenticated)
	{
		ratingGroup.POST("", r.ratingHandler.Create)
		ratingGroup.PUT("/:id", r.ratingHandler.Update)
		ratingGroup.DELETE("/:id", r.ratingHandler.Delete)
	}
}

// RegisterOpsRoutes exposes metrics and, for the local blob driver, the uploaded files.
func (r *router) RegisterOpsRoutes(e *echo.Echo) {
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		path := r.config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		e.GET(path, echo.WrapHandler(r.metrics.Handler()))
	}

	upload := r.config.Upload
	if upload != nil && upload.Driver != config.UploadDriverMinio && upload.BlobDir != "" {
		e.Static("/uploads", upload.BlobDir)
	}
}
