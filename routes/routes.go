package routes

import (
	"net/http"
	"time"

	"goldenbay/handlers"
	"goldenbay/middleware"
	"goldenbay/services/api"
	"goldenbay/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle collects everything route registration needs.
type HandlerBundle struct {
	Public    *handlers.PublicHandler
	Wizard    *handlers.WizardHandler
	Auth      *handlers.AuthHandler
	Bookings  *handlers.BookingHandler
	Customers *handlers.CustomerHandler
	Marketing *handlers.MarketingHandler

	APIClient *api.Client
	Sessions  *redis.Client
	TokenTTL  time.Duration
}

// RegisterPublicRoutes registers the anonymous site endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	publicGroup := r.Group("/api")
	{
		publicGroup.GET("/menu", hb.Public.MenuHandler)
		publicGroup.GET("/posts", hb.Public.ListPostsHandler)
		publicGroup.GET("/posts/:slug", hb.Public.GetPostHandler)
		publicGroup.GET("/rooms", hb.Public.VIPRoomsHandler)
		publicGroup.GET("/availability", hb.Public.CheckAvailabilityHandler)
		publicGroup.GET("/language", hb.Public.GetLanguageHandler)
		publicGroup.POST("/language", hb.Public.SetLanguageHandler)
	}
}

// RegisterWizardRoutes sets up the reservation wizard endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.POST("/session", hb.Wizard.StartSession)
		wizardGroup.GET("/session/:sessionID", hb.Wizard.GetSession)
		wizardGroup.PUT("/session/:sessionID/preferences", hb.Wizard.SetPreferences)
		wizardGroup.POST("/session/:sessionID/next", hb.Wizard.Next)
		wizardGroup.POST("/session/:sessionID/back", hb.Wizard.Back)
		wizardGroup.POST("/session/:sessionID/availability", hb.Wizard.RefreshAvailability)
		wizardGroup.POST("/session/:sessionID/room", hb.Wizard.SelectRoom)
		wizardGroup.POST("/session/:sessionID/time", hb.Wizard.SelectTime)
		wizardGroup.POST("/session/:sessionID/contact", hb.Wizard.ToContact)
		wizardGroup.POST("/session/:sessionID/submit", hb.Wizard.Submit)
		wizardGroup.POST("/session/:sessionID/alternate", hb.Wizard.OpenAlternateChannel)
		wizardGroup.POST("/session/:sessionID/return", hb.Wizard.ReturnToForm)
	}
}

// RegisterStaffRoutes sets up the authenticated back-office endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	staff := r.Group("/api/staff")

	staff.POST("/login", middleware.LoginRateLimitMiddleware(), hb.Auth.LoginHandler)
	staff.POST("/logout", hb.Auth.LogoutHandler)

	protected := staff.Group("")
	protected.Use(middleware.StaffSessionMiddleware(hb.Sessions, hb.APIClient, hb.TokenTTL))
	{
		protected.GET("/me", hb.Auth.MeHandler)
		protected.GET("/dashboard", handlers.DashboardHandler)

		protected.GET("/bookings", hb.Bookings.ListBookingsHandler)
		protected.PATCH("/bookings/:id", hb.Bookings.UpdateBookingHandler)
		protected.POST("/bookings/manual", hb.Bookings.CreateManualBookingHandler)

		protected.GET("/customers", hb.Customers.ListCustomersHandler)
		protected.POST("/customers", hb.Customers.CreateCustomerHandler)
		protected.PATCH("/customers/:id", hb.Customers.UpdateCustomerHandler)
		protected.DELETE("/customers/:id", middleware.RequireRole("Admin"), hb.Customers.DeleteCustomerHandler)

		marketing := protected.Group("/marketing")
		marketing.Use(middleware.RequireRole("Admin"))
		{
			marketing.GET("/posts", hb.Marketing.ListManagedPostsHandler)
			marketing.POST("/posts", hb.Marketing.CreatePostHandler)
			marketing.PATCH("/posts/:id", hb.Marketing.UpdatePostHandler)
			marketing.DELETE("/posts/:id", hb.Marketing.DeletePostHandler)
			marketing.POST("/blast", hb.Marketing.SendBlastHandler)
		}
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Golden Bay"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())

	RegisterPublicRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterHealthRoute(r)
}
