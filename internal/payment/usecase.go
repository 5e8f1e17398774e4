package payment

import (
	"context"
	"errors"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/payment/dto"
)

var (
	ErrMissingFields  = errors.New("orderId, amount and paymentMethod are required")
	ErrOrderNotFound  = errors.New("order not found")
	ErrForbidden      = errors.New("forbidden")
	ErrAmountMismatch = errors.New("payment amount does not match order total")
	ErrDuplicate      = errors.New("payment already recorded for this order")
	ErrNotFound       = errors.New("payment not found")
	ErrBusy           = errors.New("payment already in progress, please retry")
)

type UseCase interface {
	CreatePayment(ctx context.Context, input *dto.CreatePaymentInput) (*model.Payment, error)
	GetPayment(ctx context.Context, callerID, orderID string) (*model.Payment, error)
}
