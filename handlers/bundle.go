package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	// Shop endpoints
	CreateShopHandler gin.HandlerFunc
	GetShopHandler    gin.HandlerFunc
	ListShopsHandler  gin.HandlerFunc
	UpdateShopHandler gin.HandlerFunc
	DeleteShopHandler gin.HandlerFunc

	// Service endpoints
	CreateServiceHandler   gin.HandlerFunc
	GetServiceHandler      gin.HandlerFunc
	ListServicesHandler    gin.HandlerFunc
	GetShopServicesHandler gin.HandlerFunc
	UpdateServiceHandler   gin.HandlerFunc
	DeleteServiceHandler   gin.HandlerFunc

	// Barber endpoints
	CreateBarberHandler   gin.HandlerFunc
	GetBarberHandler      gin.HandlerFunc
	ListBarbersHandler    gin.HandlerFunc
	GetShopBarbersHandler gin.HandlerFunc
	UpdateBarberHandler   gin.HandlerFunc
	DeleteBarberHandler   gin.HandlerFunc

	// Availability endpoints
	GetWorkingHoursHandler      gin.HandlerFunc
	UpdateWorkingHoursHandler   gin.HandlerFunc
	GenerateAvailabilityHandler gin.HandlerFunc
	GetAvailableSlotsHandler    gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	ListUserBookingsHandler    gin.HandlerFunc
	ListBarberBookingsHandler  gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
}
