// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"aunerarroz/config"
	"aunerarroz/internal/delivery/http/middleware"
	"aunerarroz/internal/delivery/http/router/handler"
	"aunerarroz/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// MediaUploadPath is exempt from the global body limit. It carries its own
// limit sized for the largest media kind; the menu usecase checks each kind.
const MediaUploadPath = "/admin/media/:kind"

type RouterParams struct {
	fx.In

	Config *config.Config `optional:"true"`

	SessionHandler     *handler.SessionHandler
	PointsHandler      *handler.PointsHandler
	PointsAdminHandler *handler.PointsAdminHandler
	MenuHandler        *handler.MenuHandler
	OrderHandler       *handler.OrderHandler
	SuggestionHandler  *handler.SuggestionHandler
	DashboardHandler   *handler.DashboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler     *handler.SessionHandler
	pointsHandler      *handler.PointsHandler
	pointsAdminHandler *handler.PointsAdminHandler
	menuHandler        *handler.MenuHandler
	orderHandler       *handler.OrderHandler
	suggestionHandler  *handler.SuggestionHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	mediaUploadLimit   int64
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	var media *config.MediaConfig
	if params.Config != nil {
		media = params.Config.Media
	}

	return &router{
		sessionHandler:     params.SessionHandler,
		pointsHandler:      params.PointsHandler,
		pointsAdminHandler: params.PointsAdminHandler,
		menuHandler:        params.MenuHandler,
		orderHandler:       params.OrderHandler,
		suggestionHandler:  params.SuggestionHandler,
		dashboardHandler:   params.DashboardHandler,
		authMiddleware:     params.AuthMiddleware,
		mediaUploadLimit:   media.MaxUploadSize(),
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every other route knows its actor; guests pass through.
	api := e.Group("", r.authMiddleware.Resolve)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.sessionHandler.SignUp)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/admin/login", r.sessionHandler.AdminLogin)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.POST("/password/reset", r.sessionHandler.RequestPasswordReset)
		authGroup.POST("/otp/verify", r.sessionHandler.VerifyOneTimeCode)
		authGroup.GET("/session", r.sessionHandler.Session)
	}

	api.GET("/menu/dishes", r.menuHandler.ListDishes)
	api.POST("/orders", r.orderHandler.PlaceOrder)

	// Customer routes
	pointsGroup := api.Group("/points", r.authMiddleware.RequireActor(entity.ActorCustomer))
	{
		pointsGroup.GET("", r.pointsHandler.GetSummary)
		pointsGroup.POST("/redeem", r.pointsHandler.Redeem)
		pointsGroup.GET("/transactions", r.pointsHandler.ListTransactions)
	}

	suggestionsGroup := api.Group("/suggestions", r.authMiddleware.RequireActor(entity.ActorCustomer))
	{
		suggestionsGroup.POST("", r.suggestionHandler.SendSuggestion)
		suggestionsGroup.GET("", r.suggestionHandler.ListMySuggestions)
	}

	// Administrator routes
	adminGroup := api.Group("/admin", r.authMiddleware.RequireActor(entity.ActorAdmin))
	{
		adminGroup.POST("/points/codes", r.pointsAdminHandler.GenerateCodes)
		adminGroup.GET("/points/codes", r.pointsAdminHandler.ListCodes)
		adminGroup.GET("/points/codes/:id/qr", r.pointsAdminHandler.CodeQR)
		adminGroup.GET("/customers", r.pointsAdminHandler.ListCustomers)
		adminGroup.POST("/customers/:id/points/deduct", r.pointsAdminHandler.DeductPoints)

		adminGroup.GET("/dishes", r.menuHandler.ListAllDishes)
		adminGroup.POST("/dishes", r.menuHandler.CreateDish)
		adminGroup.PUT("/dishes/:id", r.menuHandler.UpdateDish)
		adminGroup.DELETE("/dishes/:id", r.menuHandler.DeleteDish)
		adminGroup.POST("/media/:kind", r.menuHandler.UploadMedia,
			echomiddleware.BodyLimit(strconv.FormatInt(r.mediaUploadLimit, 10)))

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)

		adminGroup.GET("/suggestions", r.suggestionHandler.ListSuggestions)
		adminGroup.PATCH("/suggestions/:id", r.suggestionHandler.ReviewSuggestion)

		adminGroup.GET("/dashboard", r.dashboardHandler.MonthlyStats)
	}
}
