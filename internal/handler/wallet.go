package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"coin-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// GetWalletBalance
// @Summary Get wallet snapshot
// @Description Returns the ledger-derived balance, the coins held by in-flight withdrawals and the pending transaction count
// @Tags wallet
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Success 200 {object} model.WalletSnapshot
// @Router /wallet [get]
func (h *Handler) GetWalletBalance(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	snapshot, err := h.walletService.GetWalletSnapshot(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ListTransactions
// @Summary Get wallet transaction history
// @Description Returns a filtered, paginated list of the user's ledger lines
// @Tags wallet
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param type query string false "Transaction type" Enums(credit_purchase, video_view, series_purchase, creator_earning, withdrawal, refund)
// @Param status query string false "Transaction status" Enums(pending, processing, completed, failed, cancelled)
// @Param content_id query int false "Content ID"
// @Param from query string false "Start of date range (RFC 3339)"
// @Param to query string false "End of date range (RFC 3339)"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 400 {object} model.ErrorResponse "Bad filter"
// @Router /wallet/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	filter, err := parseLedgerFilter(c, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	transactions, err := h.walletService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	})
}

func parseLedgerFilter(c *gin.Context, userID int64) (*model.LedgerFilter, error) {
	filter := &model.LedgerFilter{UserID: userID}

	if s := c.Query("type"); s != "" {
		transactionType, err := model.ParseTransactionType(s)
		if err != nil {
			return nil, err
		}
		filter.Type = transactionType
	}
	if s := c.Query("status"); s != "" {
		status, err := model.ParseTransactionStatus(s)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	if s := c.Query("content_id"); s != "" {
		contentID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: content_id must be an integer", model.ErrInvalidFilter)
		}
		filter.ContentID = &contentID
	}
	if s := c.Query("from"); s != "" {
		from, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("%w: from must be RFC 3339", model.ErrInvalidFilter)
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("%w: to must be RFC 3339", model.ErrInvalidFilter)
		}
		filter.To = &to
	}

	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return filter, nil
}
