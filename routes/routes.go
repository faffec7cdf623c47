package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"barberbook/handlers"
)

// RegisterShopRoutes registers barbershop endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops")
	{
		api.POST("", hb.CreateShopHandler)
		api.GET("", hb.ListShopsHandler)
		api.GET("/:id", hb.GetShopHandler)
		api.PUT("/:id", hb.UpdateShopHandler)
		api.DELETE("/:id", hb.DeleteShopHandler)

		// Shop-scoped collections.
		api.GET("/:id/services", hb.GetShopServicesHandler)
		api.GET("/:id/barbers", hb.GetShopBarbersHandler)
	}
}

// RegisterServiceRoutes registers service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.POST("", hb.CreateServiceHandler)
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)
		api.PUT("/:id", hb.UpdateServiceHandler)
		api.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterBarberRoutes registers barber roster and availability endpoints.
func RegisterBarberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/barbers")
	{
		api.POST("", hb.CreateBarberHandler)
		api.GET("", hb.ListBarbersHandler)
		api.GET("/:id", hb.GetBarberHandler)
		api.PUT("/:id", hb.UpdateBarberHandler)
		api.DELETE("/:id", hb.DeleteBarberHandler)

		// Working hours and the generated slot window.
		api.GET("/:id/working-hours", hb.GetWorkingHoursHandler)
		api.PUT("/:id/working-hours", hb.UpdateWorkingHoursHandler)
		api.POST("/:id/availability/generate", hb.GenerateAvailabilityHandler)
		api.GET("/:id/available-slots", hb.GetAvailableSlotsHandler)

		api.GET("/:id/bookings", hb.ListBarberBookingsHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
	r.GET("/api/users/:userId/bookings", hb.ListUserBookingsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShopRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBarberRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
