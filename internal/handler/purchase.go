package handler

import (
	"net/http"
	"strconv"

	"coin-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// PurchaseContent
// @Summary Purchase a video or series
// @Description Debits the buyer, credits the creator and records ownership atomically. Repeat purchases succeed with zero coins spent.
// @Tags purchases
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Content ID"
// @Success 200 {object} model.PurchaseResult
// @Failure 402 {object} model.ErrorResponse "Insufficient funds"
// @Failure 404 {object} model.ErrorResponse "Content not found"
// @Failure 422 {object} model.ErrorResponse "Content not available"
// @Router /content/{id}/purchase [post]
func (h *Handler) PurchaseContent(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || contentID <= 0 {
		h.handleError(c, model.ErrContentNotFound)
		return
	}

	result, err := h.purchaseService.PurchaseContent(c.Request.Context(), userID, contentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
