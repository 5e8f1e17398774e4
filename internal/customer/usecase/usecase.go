package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/customer"
	"github.com/fekuna/storefront-service/internal/customer/dto"
	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type customerUseCase struct {
	repo   customer.Repository
	tokens *auth.TokenManager
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, tokens *auth.TokenManager, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (uc *customerUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.Customer, string, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, "", customer.ErrMissingFields
	}

	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", customer.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	c := &model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      model.RoleCustomer,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Generate(auth.Identity{CustomerID: c.ID, Email: c.Email, Role: c.Role})
	if err != nil {
		return nil, "", err
	}

	uc.logger.Info("customer registered", zap.String("customer_id", c.ID))
	return c, token, nil
}

func (uc *customerUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.Customer, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", customer.ErrMissingFields
	}

	c, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if c == nil {
		return nil, "", customer.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(input.Password)); err != nil {
		return nil, "", customer.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(auth.Identity{CustomerID: c.ID, Email: c.Email, Role: c.Role})
	if err != nil {
		return nil, "", err
	}

	return c, token, nil
}

func (uc *customerUseCase) GetProfile(ctx context.Context, customerID string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, callerID, id string) (*model.Customer, error) {
	if callerID != id {
		return nil, customer.ErrForbidden
	}
	return uc.GetProfile(ctx, id)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	if input.CallerID != input.ID {
		return nil, customer.ErrForbidden
	}

	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, customer.ErrNotFound
	}

	// Optional-field merge: empty strings leave the stored value alone.
	if input.FirstName != "" {
		c.FirstName = input.FirstName
	}
	if input.LastName != "" {
		c.LastName = input.LastName
	}
	if input.Phone != nil {
		c.Phone = input.Phone
	}
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) RegisterFace(ctx context.Context, customerID, faceData string) error {
	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return customer.ErrNotFound
	}
	return uc.repo.SetFaceData(ctx, customerID, &faceData)
}

func (uc *customerUseCase) FaceStatus(ctx context.Context, customerID string) (*string, error) {
	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, customer.ErrNotFound
	}
	return c.FaceData, nil
}

func (uc *customerUseCase) ResetFace(ctx context.Context, customerID string) error {
	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return customer.ErrNotFound
	}
	return uc.repo.SetFaceData(ctx, customerID, nil)
}
