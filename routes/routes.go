package routes

import (
	"net/http"
	"time"

	"barbershop/handlers"
	"barbershop/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, verification and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/verify", hb.Auth.VerifyHandler)
		api.POST("/resend", hb.Auth.ResendHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
	r.GET("/api/catalog", hb.Catalog.GetCatalogHandler)

	// Signed in, approved or not.
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(hb.Users))
	authed.GET("/me", hb.Auth.MeHandler)
}

// RegisterCustomerRoutes registers booking, reservation, shop and profile
// endpoints. Accounts awaiting approval only get the pending notice.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireApproved())

	bookingGroup := api.Group("/booking")
	{
		bookingGroup.GET("/wizard", hb.Booking.GetWizardHandler)
		bookingGroup.POST("/service", hb.Booking.SelectServiceHandler())
		bookingGroup.POST("/provider", hb.Booking.SelectProviderHandler())
		bookingGroup.POST("/day", hb.Booking.SelectDayHandler())
		bookingGroup.POST("/time", hb.Booking.SelectTimeHandler())
		bookingGroup.POST("/back", hb.Booking.BackHandler)
		bookingGroup.POST("/restart", hb.Booking.RestartHandler)
		bookingGroup.POST("/confirm", hb.Booking.ConfirmHandler)
	}

	reservations := api.Group("/reservations")
	{
		reservations.GET("", hb.Reservations.ListHandler)
		reservations.GET("/stream", hb.Reservations.StreamHandler)
		reservations.DELETE("/:id", hb.Reservations.CancelHandler)
	}

	shopGroup := api.Group("/shop")
	{
		shopGroup.GET("/items", hb.Shop.ListItemsHandler)
		shopGroup.GET("/cart", hb.Shop.GetCartHandler)
		shopGroup.POST("/cart", hb.Shop.AddToCartHandler)
		shopGroup.PUT("/cart/:id", hb.Shop.SetQuantityHandler)
		shopGroup.DELETE("/cart/:id", hb.Shop.RemoveFromCartHandler)
		shopGroup.POST("/checkout", hb.Shop.CheckoutHandler)
		shopGroup.GET("/orders", hb.Shop.MyOrdersHandler)
	}

	api.PUT("/profile", hb.Auth.UpdateProfileHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireAdmin())
	{
		adminGroup.GET("/schedule", hb.Reservations.ScheduleHandler)
		adminGroup.GET("/schedule/stream", hb.Reservations.ScheduleStreamHandler)
		adminGroup.DELETE("/reservations/:id", hb.Reservations.CancelHandler)

		adminGroup.GET("/accounts", hb.Admin.GetAllAccountsHandler)
		adminGroup.POST("/accounts/:username/approve", hb.Admin.ApproveAccountHandler)
		adminGroup.DELETE("/accounts/:username", hb.Admin.DeleteAccountHandler)

		adminGroup.POST("/shop/items", hb.Admin.AddItemHandler)
		adminGroup.DELETE("/shop/items/:id", hb.Admin.RemoveItemHandler)
		adminGroup.GET("/orders", hb.Admin.GetAllOrdersHandler)

		adminGroup.GET("/working-days", hb.Admin.ListWorkingDaysHandler)
		adminGroup.POST("/working-days", hb.Admin.AddWorkingDayHandler)
		adminGroup.POST("/working-days/:label/toggle", hb.Admin.ToggleWorkingDayHandler)
		adminGroup.DELETE("/working-days/:label", hb.Admin.RemoveWorkingDayHandler)

		adminGroup.PUT("/profile", hb.Auth.UpdateProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency checks.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := hb.Health.Status()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "health": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
