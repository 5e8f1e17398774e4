package order

import (
	"context"
	"errors"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order/dto"
)

var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrProductNotFound   = errors.New("one or more products not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotFound          = errors.New("order not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidStatus     = errors.New("invalid order status")
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]model.Order, error)
	GetOrder(ctx context.Context, callerID, id string) (*model.Order, error)

	// UpdateStatus is the admin-only status transition endpoint.
	UpdateStatus(ctx context.Context, orderID string, status string) (*model.Order, error)
}
