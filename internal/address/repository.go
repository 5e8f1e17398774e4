package address

import (
	"context"

	"github.com/fekuna/storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, a *model.Address) error
	FindByID(ctx context.Context, id string) (*model.Address, error)
	FindByCustomer(ctx context.Context, customerID string) ([]model.Address, error)
	Update(ctx context.Context, a *model.Address) error
	Delete(ctx context.Context, id string) error

	// SaveAsDefault clears the customer's other default flags and writes the
	// address in a single transaction, so exactly one default survives.
	SaveAsDefault(ctx context.Context, a *model.Address, insert bool) error
}
