// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"onevisit/internal/delivery/http/middleware"
	"onevisit/internal/delivery/http/router/handler"
	"onevisit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OnboardingHandler *handler.OnboardingHandler
	AuthHandler       *handler.AuthHandler
	CustomerHandler   *handler.CustomerHandler
	QRCodeHandler     *handler.QRCodeHandler
	EventHandler      *handler.EventHandler
	CampaignHandler   *handler.CampaignHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	onboardingHandler *handler.OnboardingHandler
	authHandler       *handler.AuthHandler
	customerHandler   *handler.CustomerHandler
	qrCodeHandler     *handler.QRCodeHandler
	eventHandler      *handler.EventHandler
	campaignHandler   *handler.CampaignHandler
	analyticsHandler  *handler.AnalyticsHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		onboardingHandler: params.OnboardingHandler,
		authHandler:       params.AuthHandler,
		customerHandler:   params.CustomerHandler,
		qrCodeHandler:     params.QRCodeHandler,
		eventHandler:      params.EventHandler,
		campaignHandler:   params.CampaignHandler,
		analyticsHandler:  params.AnalyticsHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public onboarding endpoint hit by the QR code landing page
	e.POST("/api/customers/onboard", r.onboardingHandler.Onboard)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Dashboard routes that require authentication
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/customers", r.customerHandler.List)
		adminGroup.GET("/customers/:id", r.customerHandler.Get)
		adminGroup.POST("/customers/:id/visits", r.customerHandler.RecordVisit)

		adminGroup.POST("/qrcodes", r.qrCodeHandler.Create)
		adminGroup.GET("/qrcodes", r.qrCodeHandler.List)
		adminGroup.PATCH("/qrcodes/:id/active", r.qrCodeHandler.SetActive)
		adminGroup.GET("/qrcodes/:id/image", r.qrCodeHandler.Image)

		adminGroup.POST("/events", r.eventHandler.Create)
		adminGroup.GET("/events", r.eventHandler.List)
		adminGroup.PATCH("/events/:id/active", r.eventHandler.SetActive)

		adminGroup.GET("/campaigns", r.campaignHandler.List)
		adminGroup.GET("/analytics/dashboard", r.analyticsHandler.Dashboard)
	}

	// Campaign mutations require an elevated role
	campaignGroup := e.Group("/api/admin/campaigns")
	campaignGroup.Use(r.authMiddleware.Authenticate)
	campaignGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleBusinessOwner))
	{
		campaignGroup.POST("", r.campaignHandler.Create)
		campaignGroup.POST("/:id/send", r.campaignHandler.Send)
	}
}
