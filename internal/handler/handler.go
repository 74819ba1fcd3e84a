package handler

import (
	"errors"
	"net/http"

	"coin-ledger/internal/model"
	"coin-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	purchaseService   service.PurchaseService
	walletService     service.WalletService
	withdrawalService service.WithdrawalService
	logger            zerolog.Logger
}

func NewHandler(
	purchaseService service.PurchaseService,
	walletService service.WalletService,
	withdrawalService service.WithdrawalService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		purchaseService:   purchaseService,
		walletService:     walletService,
		withdrawalService: withdrawalService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes, user identity supplied by upstream auth via X-User-ID
	v1 := router.Group("/api/v1")

	content := v1.Group("/content")
	content.POST("/:id/purchase", h.PurchaseContent)

	wallet := v1.Group("/wallet")
	wallet.GET("", h.GetWalletBalance)
	wallet.GET("/transactions", h.ListTransactions)
	wallet.POST("/withdrawals", h.RequestWithdrawal)
	wallet.DELETE("/withdrawals/:id", h.CancelWithdrawal)

	// Payout processor callback, not exposed through the public gateway
	internal := router.Group("/internal")
	internal.POST("/withdrawals/:id/settle", h.SettleWithdrawal)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	var insufficient *model.InsufficientFundsError
	var belowMin *model.BelowMinimumError

	switch {
	case errors.As(err, &insufficient):
		status = http.StatusPaymentRequired
		code = "INSUFFICIENT_FUNDS"
		resp.CoinsRequired = insufficient.Required.StringFixed(2)
		resp.CoinsAvailable = insufficient.Available.StringFixed(2)
		resp.CoinsShortfall = insufficient.Shortfall().StringFixed(2)
	case errors.As(err, &belowMin):
		status = http.StatusBadRequest
		code = "BELOW_MINIMUM_WITHDRAWAL"
		resp.Details = "Minimum withdrawal is " + belowMin.Minimum.StringFixed(0) + " coins"
	case errors.Is(err, model.ErrContentNotFound):
		status = http.StatusNotFound
		code = "CONTENT_NOT_FOUND"
	case errors.Is(err, model.ErrContentNotAvailable):
		status = http.StatusUnprocessableEntity
		code = "CONTENT_NOT_AVAILABLE"
	case errors.Is(err, model.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrInvalidTransition):
		status = http.StatusConflict
		code = "INVALID_TRANSITION"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidPayoutMethod):
		status = http.StatusBadRequest
		code = "INVALID_PAYOUT_METHOD"
	case errors.Is(err, model.ErrInvalidType), errors.Is(err, model.ErrInvalidStatus), errors.Is(err, model.ErrInvalidFilter):
		status = http.StatusBadRequest
		code = "INVALID_FILTER"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
