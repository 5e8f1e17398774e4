package category

import (
	"context"

	"github.com/fekuna/storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, cat *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindProducts(ctx context.Context, categoryID string) ([]model.Product, error)
	Update(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, id string) error

	IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error)
}
