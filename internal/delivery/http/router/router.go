// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler the HTTP surface mounts.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	AddressHandler    *handler.AddressHandler
	ProductHandler    *handler.ProductHandler
	CartHandler       *handler.CartHandler
	CouponHandler     *handler.CouponHandler
	OrderHandler      *handler.OrderHandler
	TicketHandler     *handler.TicketHandler
	BulkOrderHandler  *handler.BulkOrderHandler
	NewsletterHandler *handler.NewsletterHandler
	SettingsHandler   *handler.SettingsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.RefreshToken)
		authGroup.POST("/forgot-password", p.UserHandler.ForgotPassword)
		authGroup.POST("/reset-password", p.UserHandler.ResetPassword)
		authGroup.POST("/otp/send", p.UserHandler.SendOTP)
		authGroup.POST("/otp/verify", p.UserHandler.VerifyOTP)
	}

	// Public catalog and newsletter routes
	e.GET("/products", p.ProductHandler.ListProducts)
	e.GET("/products/:slug", p.ProductHandler.GetProductBySlug)
	e.POST("/newsletter/subscribe", p.NewsletterHandler.Subscribe)
	e.POST("/newsletter/unsubscribe", p.NewsletterHandler.Unsubscribe)

	// Customer routes that require authentication
	authed := e.Group("", p.AuthMiddleware.Authenticate)
	{
		authed.GET("/profile", p.ProfileHandler.GetProfile)
		authed.PUT("/profile", p.ProfileHandler.UpdateProfile)
		authed.PUT("/profile/password", p.ProfileHandler.ChangePassword)

		authed.GET("/addresses", p.AddressHandler.ListAddresses)
		authed.POST("/addresses", p.AddressHandler.CreateAddress)
		authed.PUT("/addresses/:id", p.AddressHandler.UpdateAddress)
		authed.DELETE("/addresses/:id", p.AddressHandler.DeleteAddress)
		authed.PATCH("/addresses/:id/default", p.AddressHandler.SetDefaultAddress)

		authed.GET("/cart", p.CartHandler.GetCart)
		authed.POST("/cart", p.CartHandler.AddItem)
		authed.PUT("/cart/:id", p.CartHandler.UpdateItem)
		authed.DELETE("/cart/:id", p.CartHandler.RemoveItem)

		authed.POST("/coupons/evaluate", p.CouponHandler.Evaluate)

		authed.POST("/orders", p.OrderHandler.Checkout)
		authed.GET("/orders", p.OrderHandler.ListOrders)
		authed.GET("/orders/:id", p.OrderHandler.GetOrder)
		authed.POST("/orders/:id/verify-payment", p.OrderHandler.VerifyPayment)

		authed.GET("/tickets", p.TicketHandler.ListTickets)
		authed.POST("/tickets", p.TicketHandler.CreateTicket)
		authed.GET("/tickets/:id", p.TicketHandler.GetTicket)
		authed.POST("/tickets/:id/messages", p.TicketHandler.AddMessage)

		authed.POST("/bulk-orders", p.BulkOrderHandler.CreateRequest)
		authed.GET("/bulk-orders", p.BulkOrderHandler.ListRequests)
	}

	// Back-office routes require authentication and the "admin" role
	adminGroup := e.Group("/admin",
		p.AuthMiddleware.Authenticate,
		p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()),
	)
	{
		adminGroup.GET("/products", p.ProductHandler.AdminListProducts)
		adminGroup.POST("/products", p.ProductHandler.CreateProduct)
		adminGroup.PUT("/products/:id", p.ProductHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", p.ProductHandler.DeleteProduct)
		adminGroup.POST("/products/:id/image", p.ProductHandler.UploadImage)

		adminGroup.GET("/coupons", p.CouponHandler.AdminListCoupons)
		adminGroup.POST("/coupons", p.CouponHandler.CreateCoupon)
		adminGroup.PUT("/coupons/:id", p.CouponHandler.UpdateCoupon)
		adminGroup.DELETE("/coupons/:id", p.CouponHandler.DeleteCoupon)

		adminGroup.GET("/orders", p.OrderHandler.AdminListOrders)
		adminGroup.PATCH("/orders/:id/status", p.OrderHandler.AdminUpdateOrderStatus)

		adminGroup.GET("/tickets", p.TicketHandler.AdminListTickets)
		adminGroup.PATCH("/tickets/:id/status", p.TicketHandler.AdminUpdateTicketStatus)
		adminGroup.POST("/tickets/:id/messages", p.TicketHandler.AdminAddMessage)

		adminGroup.GET("/bulk-orders", p.BulkOrderHandler.AdminListRequests)
		adminGroup.PATCH("/bulk-orders/:id/status", p.BulkOrderHandler.AdminUpdateRequestStatus)

		adminGroup.GET("/subscribers", p.NewsletterHandler.AdminListSubscribers)
		adminGroup.POST("/newsletter/send", p.NewsletterHandler.AdminSendCampaign)

		adminGroup.GET("/settings/payment", p.SettingsHandler.GetPaymentSettings)
		adminGroup.PUT("/settings/payment", p.SettingsHandler.UpdatePaymentSettings)
		adminGroup.GET("/settings/sms", p.SettingsHandler.GetSMSSettings)
		adminGroup.PUT("/settings/sms", p.SettingsHandler.UpdateSMSSettings)
		adminGroup.GET("/settings/sms/balance", p.SettingsHandler.GetSMSBalance)

		adminGroup.GET("/users", p.UserHandler.AdminListUsers)
		adminGroup.PATCH("/users/:id/status", p.UserHandler.AdminSetUserStatus)
	}
}
