package handlers

import (
	"errors"
	"net/http"

	"hotel_backend/internal/services"
	"hotel_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingGuestHandler holds the booking-guest service.
type BookingGuestHandler struct {
	bookingGuestService services.BookingGuestService
}

// NewBookingGuestHandler creates a new BookingGuestHandler.
func NewBookingGuestHandler(bgs services.BookingGuestService) *BookingGuestHandler {
	return &BookingGuestHandler{bookingGuestService: bgs}
}

// CreateBookingGuest handles linking an additional guest to a booking.
func (h *BookingGuestHandler) CreateBookingGuest(c *gin.Context) {
	var req services.CreateBookingGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	id, err := h.bookingGuestService.CreateBookingGuest(req)
	if err != nil {
		if errors.Is(err, services.ErrBookingGuestReference) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Booking guest references a missing booking or guest.", err.Error()))
		} else {
			utils.LogError(err, "CreateBookingGuest: Error from bookingGuestService.CreateBookingGuest")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create booking guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetBookingGuests handles fetching all booking-guest associations.
func (h *BookingGuestHandler) GetBookingGuests(c *gin.Context) {
	records, err := h.bookingGuestService.GetBookingGuests()
	if err != nil {
		utils.LogError(err, "GetBookingGuests: Error from bookingGuestService.GetBookingGuests")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking guests.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetBookingGuestByID handles fetching a single booking-guest association.
func (h *BookingGuestHandler) GetBookingGuestByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking guest ID format.", err.Error()))
		return
	}

	record, err := h.bookingGuestService.GetBookingGuestByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingGuestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking guest record not found.", err.Error()))
		} else {
			utils.LogError(err, "GetBookingGuestByID: Error from bookingGuestService.GetBookingGuestByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateBookingGuest handles a partial update of a booking-guest association.
func (h *BookingGuestHandler) UpdateBookingGuest(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking guest ID format.", err.Error()))
		return
	}

	var req services.UpdateBookingGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	err = h.bookingGuestService.UpdateBookingGuest(id, req)
	if err != nil {
		if errors.Is(err, services.ErrBookingGuestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking guest record not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrBookingGuestReference) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Booking guest references a missing booking or guest.", err.Error()))
		} else {
			utils.LogError(err, "UpdateBookingGuest: Error from bookingGuestService.UpdateBookingGuest")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update booking guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking guest updated"})
}

// DeleteBookingGuest handles deleting a booking-guest association.
func (h *BookingGuestHandler) DeleteBookingGuest(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking guest ID format.", err.Error()))
		return
	}

	err = h.bookingGuestService.DeleteBookingGuest(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingGuestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking guest record not found to delete.", err.Error()))
		} else {
			utils.LogError(err, "DeleteBookingGuest: Error from bookingGuestService.DeleteBookingGuest")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete booking guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking guest deleted"})
}
