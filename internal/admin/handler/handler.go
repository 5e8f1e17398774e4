package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/admin"
	"github.com/fekuna/storefront-service/internal/admin/dto"
	"github.com/fekuna/storefront-service/internal/customer"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/product"
	"github.com/fekuna/storefront-service/pkg/logger"
)

// AdminHandler exposes the dashboard plus the mutation endpoints that cut
// across the other stores (stock, order status, face descriptors).
type AdminHandler struct {
	uc        admin.UseCase
	products  product.UseCase
	customers customer.UseCase
	orders    order.UseCase
	logger    logger.ZapLogger
}

func NewAdminHandler(uc admin.UseCase, products product.UseCase, customers customer.UseCase, orders order.UseCase, log logger.ZapLogger) *AdminHandler {
	return &AdminHandler{
		uc:        uc,
		products:  products,
		customers: customers,
		orders:    orders,
		logger:    log,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.uc.DashboardStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard stats", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) CategoryReport(c *gin.Context) {
	report, err := h.uc.CategoryReport(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to run category report", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) UpdateStock(c *gin.Context) {
	var input dto.UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		httputil.Error(c, http.StatusBadRequest, "productId and amount are required")
		return
	}

	if err := h.products.AdjustStock(c.Request.Context(), input.ProductID, input.Amount); err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, product.ErrInsufficientStock):
			httputil.Error(c, http.StatusConflict, "Stock cannot go negative")
		default:
			h.logger.Error("failed to update stock", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}

func (h *AdminHandler) RegisterFace(c *gin.Context) {
	var input dto.RegisterFaceInput
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" || input.FaceData == "" {
		httputil.Error(c, http.StatusBadRequest, "userId and faceData are required")
		return
	}

	if err := h.customers.RegisterFace(c.Request.Context(), input.UserID, input.FaceData); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.Error("failed to register face data", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Face registered successfully"})
}

func (h *AdminHandler) FaceStatus(c *gin.Context) {
	faceData, err := h.customers.FaceStatus(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.Error("failed to check face status", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasFaceData": faceData != nil,
		"faceData":    faceData,
	})
}

func (h *AdminHandler) ResetFace(c *gin.Context) {
	var input dto.ResetFaceInput
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" {
		httputil.Error(c, http.StatusBadRequest, "userId is required")
		return
	}

	if err := h.customers.ResetFace(c.Request.Context(), input.UserID); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.Error("failed to reset face data", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Face data reset successfully"})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var input dto.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			httputil.Error(c, http.StatusBadRequest, "Invalid order status")
		case errors.Is(err, order.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Order not found")
		default:
			h.logger.Error("failed to update order status", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": o})
}
