package handlers

import (
	"errors"
	"net/http"

	"hotel_backend/internal/services"
	"hotel_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBooking handles the creation of a new booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	id, err := h.bookingService.CreateBooking(req)
	if err != nil {
		if errors.Is(err, services.ErrDateFormat) || errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrBookingReference) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Booking references a missing room or guest.", err.Error()))
		} else {
			utils.LogError(err, "CreateBooking: Error from bookingService.CreateBooking")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetBookings handles fetching all bookings.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetBookings()
	if err != nil {
		utils.LogError(err, "GetBookings: Error from bookingService.GetBookings")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bookings.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles fetching a single booking by ID.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	bookingID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	booking, err := h.bookingService.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", err.Error()))
		} else {
			utils.LogError(err, "GetBookingByID: Error from bookingService.GetBookingByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles a partial update of a booking. An omitted price
// keeps the stored value.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	var req services.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	err = h.bookingService.UpdateBooking(bookingID, req)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrDateFormat) || errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrBookingReference) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Booking references a missing room or guest.", err.Error()))
		} else {
			utils.LogError(err, "UpdateBooking: Error from bookingService.UpdateBooking")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// DeleteBooking handles deleting a booking.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	err = h.bookingService.DeleteBooking(bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found to delete.", err.Error()))
		} else if errors.Is(err, services.ErrBookingInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Booking cannot be deleted as it is referenced by other records.", err.Error()))
		} else {
			utils.LogError(err, "DeleteBooking: Error from bookingService.DeleteBooking")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
