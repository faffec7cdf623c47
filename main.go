package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	barberRepoPkg "barberbook/database/repository/barber"
	bookingRepoPkg "barberbook/database/repository/booking"
	serviceRepoPkg "barberbook/database/repository/service"
	shopRepoPkg "barberbook/database/repository/shop"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/availability"
	"barberbook/services/booking"
	"barberbook/services/tasks"
	"barberbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	barberRepo := barberRepoPkg.NewMongoBarberRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	// One keyed mutex shared by every slot-ledger writer.
	ledgerLocks := utils.NewKeyedMutex()
	enqueuer := tasks.NewAsynqEnqueuer()

	// Services.
	availabilityService := &availability.DefaultAvailabilityService{
		Barbers:    barberRepo,
		Cache:      utils.GetCacheClient(),
		Locks:      ledgerLocks,
		Enqueuer:   enqueuer,
		WindowDays: config.AppConfig.AvailabilityWindowDays,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:   bookingRepo,
		Barbers:    barberRepo,
		Services:   serviceRepo,
		Cache:      utils.GetCacheClient(),
		Locks:      ledgerLocks,
		RetryLimit: config.AppConfig.ClaimRetryLimit,
	}

	// Handlers.
	shopHandler := handlers.NewShopHandler(shopRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	barberHandler := handlers.NewBarberHandler(barberRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Shop endpoints.
		CreateShopHandler: shopHandler.CreateShopHandler,
		GetShopHandler:    shopHandler.GetShopHandler,
		ListShopsHandler:  shopHandler.ListShopsHandler,
		UpdateShopHandler: shopHandler.UpdateShopHandler,
		DeleteShopHandler: shopHandler.DeleteShopHandler,

		// Service endpoints.
		CreateServiceHandler:   serviceHandler.CreateServiceHandler,
		GetServiceHandler:      serviceHandler.GetServiceHandler,
		ListServicesHandler:    serviceHandler.ListServicesHandler,
		GetShopServicesHandler: serviceHandler.GetShopServicesHandler,
		UpdateServiceHandler:   serviceHandler.UpdateServiceHandler,
		DeleteServiceHandler:   serviceHandler.DeleteServiceHandler,

		// Barber endpoints.
		CreateBarberHandler:   barberHandler.CreateBarberHandler,
		GetBarberHandler:      barberHandler.GetBarberHandler,
		ListBarbersHandler:    barberHandler.ListBarbersHandler,
		GetShopBarbersHandler: barberHandler.GetShopBarbersHandler,
		UpdateBarberHandler:   barberHandler.UpdateBarberHandler,
		DeleteBarberHandler:   barberHandler.DeleteBarberHandler,

		// Availability endpoints.
		GetWorkingHoursHandler:      availabilityHandler.GetWorkingHoursHandler,
		UpdateWorkingHoursHandler:   availabilityHandler.UpdateWorkingHoursHandler,
		GenerateAvailabilityHandler: availabilityHandler.GenerateAvailabilityHandler,
		GetAvailableSlotsHandler:    availabilityHandler.GetAvailableSlotsHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		ListUserBookingsHandler:    bookingHandler.ListUserBookingsHandler,
		ListBarberBookingsHandler:  bookingHandler.ListBarberBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for availability regeneration.
	cron.InitAvailabilityWorker(availabilityService)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
