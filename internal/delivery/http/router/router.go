// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pindrop/internal/delivery/http/middleware"
	"pindrop/internal/delivery/http/router/handler"
	"pindrop/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PinHandler     *handler.PinHandler
	ClaimHandler   *handler.ClaimHandler
	GroupHandler   *handler.GroupHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pinHandler     *handler.PinHandler
	claimHandler   *handler.ClaimHandler
	groupHandler   *handler.GroupHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pinHandler:     params.PinHandler,
		claimHandler:   params.ClaimHandler,
		groupHandler:   params.GroupHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Pin routes. The viewport query is public; collecting and claiming
	// require a logged-in user, the printable QR code a creator.
	pinGroup := e.Group("/pins")
	{
		pinGroup.GET("", r.pinHandler.QueryPins)
		pinGroup.GET("/:id/qrcode", r.pinHandler.CollectQRCode,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(constants.RoleCreator))

		pinGroup.POST("/:id/collect", r.pinHandler.Collect, r.authMiddleware.Authenticate)
		pinGroup.POST("/:id/claim", r.claimHandler.BuildOffer, r.authMiddleware.Authenticate)
		pinGroup.POST("/:id/claim/submit", r.claimHandler.Submit, r.authMiddleware.Authenticate)
	}

	// Claim finalization for transactions confirmed out of band
	claimGroup := e.Group("/claims")
	claimGroup.Use(r.authMiddleware.Authenticate)
	{
		claimGroup.POST("/:id/finalize", r.claimHandler.Finalize)
	}

	// Creator campaign routes that require authentication and "creator" role
	groupGroup := e.Group("/groups")
	groupGroup.Use(r.authMiddleware.Authenticate)
	{
		groupGroup.POST("", r.groupHandler.CreateGroup, r.authMiddleware.RequireRole(constants.RoleCreator))
		groupGroup.GET("", r.groupHandler.GetGroups, r.authMiddleware.RequireRole(constants.RoleCreator))

		groupGroup.POST("/:id/approval", r.groupHandler.SetApproval, r.authMiddleware.RequireRole(constants.RoleAdmin))
	}
}
