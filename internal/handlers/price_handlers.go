package handlers

import (
	"errors"
	"net/http"

	"hotel_backend/internal/services"
	"hotel_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PriceHandler holds the price service.
type PriceHandler struct {
	priceService services.PriceService
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(ps services.PriceService) *PriceHandler {
	return &PriceHandler{priceService: ps}
}

// CreatePrice handles the creation of a new weekday rate.
func (h *PriceHandler) CreatePrice(c *gin.Context) {
	var req services.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	id, err := h.priceService.CreatePrice(req)
	if err != nil {
		if errors.Is(err, services.ErrPriceReference) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Price references a missing room.", err.Error()))
		} else {
			utils.LogError(err, "CreatePrice: Error from priceService.CreatePrice")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create price.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetPrices handles fetching all weekday rates.
func (h *PriceHandler) GetPrices(c *gin.Context) {
	prices, err := h.priceService.GetPrices()
	if err != nil {
		utils.LogError(err, "GetPrices: Error from priceService.GetPrices")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch prices.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, prices)
}

// GetPriceByID handles fetching a single weekday rate by ID.
func (h *PriceHandler) GetPriceByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price ID format.", err.Error()))
		return
	}

	price, err := h.priceService.GetPriceByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPriceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Price not found.", err.Error()))
		} else {
			utils.LogError(err, "GetPriceByID: Error from priceService.GetPriceByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch price.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, price)
}

// UpdatePrice handles a partial update of a weekday rate.
func (h *PriceHandler) UpdatePrice(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price ID format.", err.Error()))
		return
	}

	var req services.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	err = h.priceService.UpdatePrice(id, req)
	if err != nil {
		if errors.Is(err, services.ErrPriceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Price not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrPriceReference) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Price references a missing room.", err.Error()))
		} else {
			utils.LogError(err, "UpdatePrice: Error from priceService.UpdatePrice")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update price.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated"})
}

// DeletePrice handles deleting a weekday rate.
func (h *PriceHandler) DeletePrice(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price ID format.", err.Error()))
		return
	}

	err = h.priceService.DeletePrice(id)
	if err != nil {
		if errors.Is(err, services.ErrPriceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Price not found to delete.", err.Error()))
		} else {
			utils.LogError(err, "DeletePrice: Error from priceService.DeletePrice")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete price.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price deleted"})
}
