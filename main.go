package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smarttour/config"
	"smarttour/cron"
	"smarttour/database"
	bookingRepoPkg "smarttour/database/repository/booking"
	driverRepoPkg "smarttour/database/repository/driver"
	paymentRepoPkg "smarttour/database/repository/payment"
	tourRepoPkg "smarttour/database/repository/tour"
	userRepoPkg "smarttour/database/repository/user"
	vehicleRepoPkg "smarttour/database/repository/vehicle"
	"smarttour/handlers"
	"smarttour/routes"
	"smarttour/services/booking"
	"smarttour/services/driver"
	"smarttour/services/payment"
	"smarttour/services/tasks"
	"smarttour/services/tour"
	"smarttour/services/user"
	"smarttour/services/vehicle"
	"smarttour/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	driverRepo := driverRepoPkg.NewMongoDriverRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	tourService := &tour.DefaultTourService{Repo: tourRepo}
	vehicleService := &vehicle.DefaultVehicleService{Repo: vehicleRepo}
	driverService := &driver.DefaultDriverService{Repo: driverRepo, UserRepo: userRepo}

	reminderScheduler := tasks.NewReminderScheduler(logger)
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		TourRepo:    tourRepo,
		VehicleRepo: vehicleRepo,
		DriverRepo:  driverRepo,
		CacheClient: utils.GetCacheClient(),
		Reminders:   reminderScheduler,
		Logger:      logger,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentRepo,
		BookingRepo: bookingRepo,
		Logger:      logger,
	}

	// background reminder worker.
	cron.InitReminderWorker(bookingRepo, userRepo)

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		User:    &handlers.UserHandler{UserService: userService},
		Tour:    &handlers.TourHandler{TourService: tourService},
		Vehicle: &handlers.VehicleHandler{VehicleService: vehicleService},
		Driver:  &handlers.DriverHandler{DriverService: driverService},
		Booking: &handlers.BookingHandler{BookingService: bookingService},
		Payment: &handlers.PaymentHandler{PaymentService: paymentService},
		Admin:   &handlers.AdminHandler{UserService: userService},
		Storage: &handlers.StorageHandler{
			StorageSvc:     storageService,
			TourService:    tourService,
			VehicleService: vehicleService,
		},
	}

	routes.RegisterRoutes(router, handlerBundle, driverRepo)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
