// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"columbus/internal/delivery/api/middleware"
	"columbus/internal/delivery/api/router/handler"
	"columbus/internal/domain/entity"
	"columbus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ItineraryHandler    *handler.ItineraryHandler
	ChatHandler         *handler.ChatHandler
	UserHandler         *handler.UserHandler
	TravelHandler       *handler.TravelHandler
	FeedbackHandler     *handler.FeedbackHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	itineraryHandler    *handler.ItineraryHandler
	chatHandler         *handler.ChatHandler
	userHandler         *handler.UserHandler
	travelHandler       *handler.TravelHandler
	feedbackHandler     *handler.FeedbackHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		itineraryHandler:    params.ItineraryHandler,
		chatHandler:         params.ChatHandler,
		userHandler:         params.UserHandler,
		travelHandler:       params.TravelHandler,
		feedbackHandler:     params.FeedbackHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Everything else requires an identity. Throttling runs first so a limited
	// caller is turned away before identity resolution touches the database.
	protected := []echo.MiddlewareFunc{r.rateLimitMiddleware.Handle, r.authMiddleware.Authenticate}

	itineraryGroup := e.Group("/itinerary", protected...)
	{
		itineraryGroup.POST("/generate", r.itineraryHandler.Generate)
		itineraryGroup.GET("/:id", r.itineraryHandler.Get)
		itineraryGroup.PUT("/:id", r.itineraryHandler.Update)
		itineraryGroup.GET("/:id/days", r.itineraryHandler.ListDays)
		itineraryGroup.GET("/:id/qrcode", r.itineraryHandler.QRCode)
	}

	chatGroup := e.Group("/chat", protected...)
	{
		chatGroup.POST("", r.chatHandler.SendMessage)
		chatGroup.GET("/:sessionId/messages", r.chatHandler.ListMessages)
	}

	userGroup := e.Group("/user", protected...)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.GET("/preferences", r.userHandler.GetPreferences)
		userGroup.POST("/preferences", r.userHandler.SavePreferences)
		userGroup.POST("/saved-places", r.userHandler.SavePlace)
		userGroup.GET("/saved-places", r.userHandler.ListSavedPlaces)
		userGroup.PUT("/saved-places/:id/visited", r.userHandler.SetVisited)
	}

	e.GET("/destinations/suggest", r.travelHandler.SuggestDestinations, protected...)
	e.GET("/transportation/guidance", r.travelHandler.TransportationGuidance, protected...)

	feedbackGroup := e.Group("/feedback", protected...)
	{
		feedbackGroup.POST("", r.feedbackHandler.Submit)
		feedbackGroup.PUT("/:id/resolve", r.feedbackHandler.Resolve, r.authMiddleware.RequireRole(entity.RoleSupport))
	}
}
