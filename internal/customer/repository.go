package customer

import (
	"context"

	"github.com/fekuna/storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error

	// Face descriptor storage. The server never interprets the payload.
	SetFaceData(ctx context.Context, id string, faceData *string) error
}
