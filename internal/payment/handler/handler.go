package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/internal/payment"
	"github.com/fekuna/storefront-service/internal/payment/dto"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type PaymentHandler struct {
	uc     payment.UseCase
	logger logger.ZapLogger
}

func NewPaymentHandler(uc payment.UseCase, log logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input dto.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.CustomerID = id.CustomerID

	p, err := h.uc.CreatePayment(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingFields):
			httputil.Error(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, payment.ErrOrderNotFound):
			httputil.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, payment.ErrForbidden):
			httputil.Error(c, http.StatusForbidden, "Forbidden")
		case errors.Is(err, payment.ErrAmountMismatch):
			httputil.Error(c, http.StatusBadRequest, "Payment amount does not match order total")
		case errors.Is(err, payment.ErrDuplicate):
			httputil.Error(c, http.StatusConflict, "Payment already recorded for this order")
		case errors.Is(err, payment.ErrBusy):
			httputil.Error(c, http.StatusConflict, "Payment already in progress")
		default:
			h.logger.Error("failed to create payment", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded successfully", "payment": p})
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.uc.GetPayment(c.Request.Context(), id.CustomerID, c.Param("orderId"))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Payment not found")
		case errors.Is(err, payment.ErrForbidden):
			httputil.Error(c, http.StatusForbidden, "Forbidden")
		default:
			h.logger.Error("failed to get payment", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": p})
}
