package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/address"
	"github.com/fekuna/storefront-service/internal/address/dto"
	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type AddressHandler struct {
	uc     address.UseCase
	logger logger.ZapLogger
}

func NewAddressHandler(uc address.UseCase, log logger.ZapLogger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AddressHandler) List(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	addrs, err := h.uc.ListAddresses(c.Request.Context(), id.CustomerID)
	if err != nil {
		h.logger.Error("failed to list addresses", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addrs})
}

func (h *AddressHandler) Create(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input dto.CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.CustomerID = id.CustomerID

	addr, err := h.uc.CreateAddress(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, address.ErrMissingFields) {
			httputil.Error(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		h.logger.Error("failed to create address", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Address created successfully", "address": addr})
}

func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input dto.UpdateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.ID = c.Param("id")
	input.CustomerID = id.CustomerID

	addr, err := h.uc.UpdateAddress(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, address.ErrForbidden) {
			httputil.Error(c, http.StatusForbidden, "Forbidden")
			return
		}
		h.logger.Error("failed to update address", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully", "address": addr})
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.uc.DeleteAddress(c.Request.Context(), id.CustomerID, c.Param("id")); err != nil {
		if errors.Is(err, address.ErrForbidden) {
			httputil.Error(c, http.StatusForbidden, "Forbidden")
			return
		}
		h.logger.Error("failed to delete address", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
