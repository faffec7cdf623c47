package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	serviceRepo "barberbook/database/repository/service"
	shopRepo "barberbook/database/repository/shop"
	"barberbook/services/booking"
	"barberbook/services/schedule"
	"barberbook/utils"
)

// respondError maps service errors to HTTP responses. Booking errors carry
// their code so clients can branch without parsing messages.
func respondError(c *gin.Context, err error) {
	var bookErr *booking.BookingError
	if errors.As(err, &bookErr) {
		c.JSON(statusForCode(bookErr.Code), gin.H{
			"error": bookErr.Message,
			"code":  bookErr.Code,
		})
		return
	}

	var fmtErr *schedule.FormatError
	if errors.As(err, &fmtErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmtErr.Error()})
		return
	}

	if errors.Is(err, barberRepo.ErrNotFound) || errors.Is(err, bookingRepo.ErrNotFound) ||
		errors.Is(err, shopRepo.ErrNotFound) || errors.Is(err, serviceRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal server error", err.Error())
}

func statusForCode(code string) int {
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeClaimConflict:
		return http.StatusConflict
	case booking.CodeInvalidInput, booking.CodeNoAvailability, booking.CodeSlotUnavailable, booking.CodeInvalidState:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
