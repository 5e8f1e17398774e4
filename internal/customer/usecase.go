package customer

import (
	"context"

	"github.com/fekuna/storefront-service/internal/customer/dto"
	"github.com/fekuna/storefront-service/internal/model"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.Customer, string, error)
	Login(ctx context.Context, input *dto.LoginInput) (*model.Customer, string, error)
	GetProfile(ctx context.Context, customerID string) (*model.Customer, error)

	GetCustomer(ctx context.Context, callerID, id string) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)

	// Face descriptor ops, used by the admin surface.
	RegisterFace(ctx context.Context, customerID, faceData string) error
	FaceStatus(ctx context.Context, customerID string) (*string, error)
	ResetFace(ctx context.Context, customerID string) error
}
