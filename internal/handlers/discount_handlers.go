package handlers

import (
	"errors"
	"net/http"

	"hotel_backend/internal/services"
	"hotel_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DiscountHandler holds the discount service.
type DiscountHandler struct {
	discountService services.DiscountService
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(ds services.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: ds}
}

// CreateDiscount handles the creation of a new tenure discount rule.
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req services.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	id, err := h.discountService.CreateDiscount(req)
	if err != nil {
		utils.LogError(err, "CreateDiscount: Error from discountService.CreateDiscount")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create discount.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetDiscounts handles fetching all tenure discount rules.
func (h *DiscountHandler) GetDiscounts(c *gin.Context) {
	discounts, err := h.discountService.GetDiscounts()
	if err != nil {
		utils.LogError(err, "GetDiscounts: Error from discountService.GetDiscounts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch discounts.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// GetDiscountByID handles fetching a single tenure discount rule by ID.
func (h *DiscountHandler) GetDiscountByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid discount ID format.", err.Error()))
		return
	}

	discount, err := h.discountService.GetDiscountByID(id)
	if err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Discount not found.", err.Error()))
		} else {
			utils.LogError(err, "GetDiscountByID: Error from discountService.GetDiscountByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch discount.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, discount)
}

// UpdateDiscount handles a partial update of a tenure discount rule.
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid discount ID format.", err.Error()))
		return
	}

	var req services.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	err = h.discountService.UpdateDiscount(id, req)
	if err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Discount not found to update.", err.Error()))
		} else {
			utils.LogError(err, "UpdateDiscount: Error from discountService.UpdateDiscount")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update discount.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount updated"})
}

// DeleteDiscount handles deleting a tenure discount rule.
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid discount ID format.", err.Error()))
		return
	}

	err = h.discountService.DeleteDiscount(id)
	if err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Discount not found to delete.", err.Error()))
		} else {
			utils.LogError(err, "DeleteDiscount: Error from discountService.DeleteDiscount")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete discount.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
}
