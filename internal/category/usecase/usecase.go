package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/storefront-service/internal/category"
	"github.com/fekuna/storefront-service/internal/category/dto"
	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, category.ErrMissingFields
	}

	unique, err := uc.repo.IsSlugUnique(ctx, input.Slug, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, category.ErrSlugTaken
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.ErrNotFound
	}

	products, err := uc.repo.FindProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Products = products

	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.ErrNotFound
	}

	if input.Slug != "" && input.Slug != cat.Slug {
		unique, err := uc.repo.IsSlugUnique(ctx, input.Slug, cat.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, category.ErrSlugTaken
		}
		cat.Slug = input.Slug
	}

	if input.Name != "" {
		cat.Name = input.Name
	}
	if input.Description != nil {
		cat.Description = input.Description
	}
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
