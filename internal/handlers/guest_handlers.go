package handlers

import (
	"errors"
	"net/http"

	"hotel_backend/internal/services"
	"hotel_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GuestHandler holds the guest service.
type GuestHandler struct {
	guestService services.GuestService
}

// NewGuestHandler creates a new GuestHandler.
func NewGuestHandler(gs services.GuestService) *GuestHandler {
	return &GuestHandler{guestService: gs}
}

// CreateGuest handles the creation of a new guest.
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req services.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	guest, err := h.guestService.CreateGuest(req)
	if err != nil {
		utils.LogError(err, "CreateGuest: Error from guestService.CreateGuest")
		if errors.Is(err, services.ErrPassportExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Guest with these passport details already exists.", err.Error()))
		} else if errors.Is(err, services.ErrGuestValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// GetGuests handles fetching all guests.
func (h *GuestHandler) GetGuests(c *gin.Context) {
	guests, err := h.guestService.GetGuests()
	if err != nil {
		utils.LogError(err, "GetGuests: Error from guestService.GetGuests")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch guests.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuestByID handles fetching a single guest by ID.
func (h *GuestHandler) GetGuestByID(c *gin.Context) {
	guestID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid guest ID format.", err.Error()))
		return
	}

	guest, err := h.guestService.GetGuestByID(guestID)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Guest not found.", err.Error()))
		} else {
			utils.LogError(err, "GetGuestByID: Error from guestService.GetGuestByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdateGuest handles a partial update of a guest.
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	guestID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid guest ID format.", err.Error()))
		return
	}

	var req services.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	err = h.guestService.UpdateGuest(guestID, req)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Guest not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrPassportExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Guest with these passport details already exists.", err.Error()))
		} else if errors.Is(err, services.ErrGuestValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.LogError(err, "UpdateGuest: Error from guestService.UpdateGuest")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest updated"})
}

// DeleteGuest handles deleting a guest.
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	guestID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid guest ID format.", err.Error()))
		return
	}

	err = h.guestService.DeleteGuest(guestID)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Guest not found to delete.", err.Error()))
		} else if errors.Is(err, services.ErrGuestInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Guest cannot be deleted as they are referenced by bookings.", err.Error()))
		} else {
			utils.LogError(err, "DeleteGuest: Error from guestService.DeleteGuest")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete guest.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted"})
}
