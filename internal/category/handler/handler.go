package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/category"
	"github.com/fekuna/storefront-service/internal/category/dto"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Category not found")
			return
		}
		h.logger.Error("failed to get category", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrMissingFields):
			httputil.Error(c, http.StatusBadRequest, "Name and slug are required")
		case errors.Is(err, category.ErrSlugTaken):
			httputil.Error(c, http.StatusConflict, "Slug already exists")
		default:
			h.logger.Error("failed to create category", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": cat})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var input dto.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.ID = c.Param("id")

	cat, err := h.uc.UpdateCategory(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, category.ErrSlugTaken):
			httputil.Error(c, http.StatusConflict, "Slug already exists")
		default:
			h.logger.Error("failed to update category", zap.Error(err))
			httputil.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": cat})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete category", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
