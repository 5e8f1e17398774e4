package address

import (
	"context"
	"errors"

	"github.com/fekuna/storefront-service/internal/address/dto"
	"github.com/fekuna/storefront-service/internal/model"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrForbidden     = errors.New("forbidden")
)

type UseCase interface {
	ListAddresses(ctx context.Context, customerID string) ([]model.Address, error)
	CreateAddress(ctx context.Context, input *dto.CreateAddressInput) (*model.Address, error)
	UpdateAddress(ctx context.Context, input *dto.UpdateAddressInput) (*model.Address, error)
	DeleteAddress(ctx context.Context, customerID, id string) error
}
