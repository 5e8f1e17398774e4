package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/customer"
	"github.com/fekuna/storefront-service/internal/customer/dto"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cust, token, err := h.uc.Register(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingFields):
			httputil.Error(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, customer.ErrEmailTaken):
			httputil.Error(c, http.StatusConflict, "Email already registered")
		default:
			h.logger.Error("failed to register customer", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration successful",
		"customer": cust,
		"token":    token,
	})
}

func (h *CustomerHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cust, token, err := h.uc.Login(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingFields):
			httputil.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, customer.ErrInvalidCredentials):
			httputil.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.logger.Error("failed to log in customer", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"customer": cust,
		"token":    token,
	})
}

func (h *CustomerHandler) Profile(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cust, err := h.uc.GetProfile(c.Request.Context(), id.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cust, err := h.uc.GetCustomer(c.Request.Context(), id.CustomerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrForbidden):
			httputil.Error(c, http.StatusForbidden, "Forbidden")
		case errors.Is(err, customer.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Customer not found")
		default:
			h.logger.Error("failed to load customer", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input dto.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.ID = c.Param("id")
	input.CallerID = id.CustomerID

	cust, err := h.uc.UpdateCustomer(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrForbidden):
			httputil.Error(c, http.StatusForbidden, "Forbidden")
		case errors.Is(err, customer.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Customer not found")
		default:
			h.logger.Error("failed to update customer", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully", "customer": cust})
}
