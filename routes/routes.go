package routes

import (
	"net/http"
	"time"

	driverRepo "smarttour/database/repository/driver"
	"smarttour/handlers"
	"smarttour/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.GET("/me", hb.User.ProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.POST("/logout", hb.User.LogoutHandler)
		api.POST("/me/notifications/read", hb.User.MarkNotificationsReadHandler)
	}
}

// RegisterCatalogueRoutes registers public tour and vehicle browsing plus
// driver listings.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	tours := r.Group("/api/tours")
	{
		tours.GET("", hb.Tour.ListToursHandler)
		tours.GET("/:id", hb.Tour.GetTourHandler)
	}

	vehicles := r.Group("/api/vehicles")
	{
		vehicles.GET("", hb.Vehicle.ListVehiclesHandler)
		vehicles.GET("/:id", hb.Vehicle.GetVehicleHandler)
	}

	drivers := r.Group("/api/drivers")
	{
		drivers.GET("", hb.Driver.ListDriversHandler)
		drivers.GET("/:id", hb.Driver.GetDriverHandler)

		drivers.Use(middleware.AuthMiddleware())
		drivers.POST("/:id/reviews", hb.Driver.AddDriverReviewHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, drivers driverRepo.DriverRepository) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(), middleware.ResolveActor(drivers))
		api.POST("/estimate", hb.Booking.EstimateHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListMyBookingsHandler)
		api.GET("/assigned", hb.Booking.ListAssignedBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id/status", hb.Booking.TransitionHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterPaymentRoutes sets up payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/intent", hb.Payment.CreateIntentHandler)
		api.POST("", hb.Payment.RecordPaymentHandler)
		api.GET("/booking/:bookingId", hb.Payment.ListBookingPaymentsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, drivers driverRepo.DriverRepository) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(), middleware.AdminOnly(), middleware.ResolveActor(drivers))

		api.GET("/users", hb.Admin.ListUsersHandler)
		api.GET("/users/:id", hb.Admin.GetUserHandler)

		api.POST("/tours", hb.Tour.CreateTourHandler)
		api.PUT("/tours/:id", hb.Tour.UpdateTourHandler)
		api.DELETE("/tours/:id", hb.Tour.DeleteTourHandler)

		api.POST("/vehicles", hb.Vehicle.CreateVehicleHandler)
		api.PUT("/vehicles/:id", hb.Vehicle.UpdateVehicleHandler)
		api.PATCH("/vehicles/:id/status", hb.Vehicle.SetVehicleStatusHandler)
		api.DELETE("/vehicles/:id", hb.Vehicle.DeleteVehicleHandler)

		api.POST("/drivers", hb.Driver.CreateDriverHandler)
		api.PUT("/drivers/:id", hb.Driver.UpdateDriverHandler)

		api.GET("/bookings", hb.Booking.ListAllBookingsHandler)
		api.POST("/bookings/:id/driver", hb.Booking.AssignDriverHandler)

		api.POST("/media/:target/:id", hb.Storage.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SmartTour"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, drivers driverRepo.DriverRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterCatalogueRoutes(r, hb)
	RegisterBookingRoutes(r, hb, drivers)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb, drivers)
}
