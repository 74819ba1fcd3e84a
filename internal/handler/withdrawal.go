package handler

import (
	"net/http"

	"coin-ledger/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestWithdrawal
// @Summary Request a coin withdrawal
// @Description Converts available coins into a rupee payout request. Requested coins are held until the payout settles or the request is cancelled.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param withdrawal body model.WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} model.WithdrawalReceipt
// @Failure 400 {object} model.ErrorResponse "Below minimum or invalid amount"
// @Failure 402 {object} model.ErrorResponse "Insufficient funds"
// @Router /wallet/withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req model.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	coins, err := decimal.NewFromString(req.Coins)
	if err != nil {
		h.handleError(c, model.ErrInvalidAmount)
		return
	}

	method, err := model.ParsePayoutMethod(req.Method)
	if err != nil {
		h.handleError(c, err)
		return
	}

	receipt, err := h.withdrawalService.RequestWithdrawal(c.Request.Context(), userID, coins, method)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// CancelWithdrawal
// @Summary Cancel a pending withdrawal
// @Description Releases the hold on a withdrawal that has not been dispatched for payout yet
// @Tags withdrawals
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} model.ErrorResponse "Withdrawal not found"
// @Failure 409 {object} model.ErrorResponse "No longer pending"
// @Router /wallet/withdrawals/{id} [delete]
func (h *Handler) CancelWithdrawal(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	withdrawalID := c.Param("id")
	if _, err := uuid.Parse(withdrawalID); err != nil {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	if err := h.withdrawalService.CancelWithdrawal(c.Request.Context(), userID, withdrawalID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// SettleWithdrawal
// @Summary Settle a dispatched withdrawal (payout processor callback)
// @Description Transitions a processing withdrawal to completed or failed
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Param settle body model.SettleRequest true "Settlement outcome"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse "Withdrawal not found"
// @Failure 409 {object} model.ErrorResponse "Invalid transition"
// @Router /internal/withdrawals/{id}/settle [post]
func (h *Handler) SettleWithdrawal(c *gin.Context) {
	withdrawalID := c.Param("id")
	if _, err := uuid.Parse(withdrawalID); err != nil {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	var req model.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.withdrawalService.SettleWithdrawal(c.Request.Context(), withdrawalID, req.Success); err != nil {
		h.handleError(c, err)
		return
	}

	status := model.StatusCompleted
	if !req.Success {
		status = model.StatusFailed
	}
	c.JSON(http.StatusOK, gin.H{"status": status.String()})
}
