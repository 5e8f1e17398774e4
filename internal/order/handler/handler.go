package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/order/dto"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.uc.ListOrders(c.Request.Context(), id.CustomerID)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	o, err := h.uc.GetOrder(c.Request.Context(), id.CustomerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrForbidden):
			httputil.Error(c, http.StatusForbidden, "Forbidden")
		default:
			h.logger.Error("failed to get order", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *OrderHandler) Create(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input dto.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.CustomerID = id.CustomerID

	o, err := h.uc.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyOrder):
			httputil.Error(c, http.StatusBadRequest, "Order must contain at least one item")
		case errors.Is(err, order.ErrInvalidQuantity):
			httputil.Error(c, http.StatusBadRequest, "Item quantity must be positive")
		case errors.Is(err, order.ErrProductNotFound):
			httputil.Error(c, http.StatusBadRequest, "One or more products not found")
		case errors.Is(err, order.ErrInsufficientStock):
			httputil.Error(c, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to create order", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": o})
}
