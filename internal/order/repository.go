package order

import (
	"context"

	"github.com/fekuna/storefront-service/internal/model"
)

type Repository interface {
	// CreateWithItems persists the order header, its line items, and the
	// matching stock decrements in one transaction. Either everything
	// commits or nothing does.
	CreateWithItems(ctx context.Context, o *model.Order) error

	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}
