package payment

import (
	"context"

	"github.com/fekuna/storefront-service/internal/model"
)

type Repository interface {
	// CreateWithStatusUpdate inserts the payment row and advances its order
	// to PROCESSING in one transaction.
	CreateWithStatusUpdate(ctx context.Context, p *model.Payment) error

	FindByOrderID(ctx context.Context, orderID string) (*model.Payment, error)
}
