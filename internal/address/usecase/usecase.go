package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/storefront-service/internal/address"
	"github.com/fekuna/storefront-service/internal/address/dto"
	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type addressUseCase struct {
	repo   address.Repository
	logger logger.ZapLogger
}

func NewAddressUseCase(repo address.Repository, log logger.ZapLogger) address.UseCase {
	return &addressUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *addressUseCase) ListAddresses(ctx context.Context, customerID string) ([]model.Address, error) {
	return uc.repo.FindByCustomer(ctx, customerID)
}

func (uc *addressUseCase) CreateAddress(ctx context.Context, input *dto.CreateAddressInput) (*model.Address, error) {
	if input.Street == "" || input.City == "" || input.State == "" || input.ZipCode == "" || input.Country == "" {
		return nil, address.ErrMissingFields
	}

	now := time.Now()
	a := &model.Address{
		BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CustomerID: input.CustomerID,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}

	if a.IsDefault {
		if err := uc.repo.SaveAsDefault(ctx, a, true); err != nil {
			return nil, err
		}
		return a, nil
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *addressUseCase) UpdateAddress(ctx context.Context, input *dto.UpdateAddressInput) (*model.Address, error) {
	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.CustomerID != input.CustomerID {
		return nil, address.ErrForbidden
	}

	// Optional-field merge
	if input.Street != "" {
		existing.Street = input.Street
	}
	if input.City != "" {
		existing.City = input.City
	}
	if input.State != "" {
		existing.State = input.State
	}
	if input.ZipCode != "" {
		existing.ZipCode = input.ZipCode
	}
	if input.Country != "" {
		existing.Country = input.Country
	}
	if input.IsDefault != nil {
		existing.IsDefault = *input.IsDefault
	}
	existing.UpdatedAt = time.Now()

	if existing.IsDefault {
		if err := uc.repo.SaveAsDefault(ctx, existing, false); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *addressUseCase) DeleteAddress(ctx context.Context, customerID, id string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.CustomerID != customerID {
		return address.ErrForbidden
	}

	return uc.repo.Delete(ctx, id)
}
