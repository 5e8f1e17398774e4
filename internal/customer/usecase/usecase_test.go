package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/customer"
	"github.com/fekuna/storefront-service/internal/customer/dto"
	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type fakeCustomerRepo struct {
	byID    map[string]*model.Customer
	byEmail map[string]*model.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byID:    make(map[string]*model.Customer),
		byEmail: make(map[string]*model.Customer),
	}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	r.byEmail[c.Email] = &cp
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return r.byID[id], nil
}

func (r *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.byEmail[email], nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	r.byEmail[c.Email] = &cp
	return nil
}

func (r *fakeCustomerRepo) SetFaceData(ctx context.Context, id string, faceData *string) error {
	if c, ok := r.byID[id]; ok {
		c.FaceData = faceData
	}
	return nil
}

func newTestUseCase() (customer.UseCase, *fakeCustomerRepo, *auth.TokenManager) {
	repo := newFakeCustomerRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewCustomerUseCase(repo, tokens, logger.NewNop()), repo, tokens
}

func registerInput() *dto.RegisterInput {
	return &dto.RegisterInput{
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	uc, repo, tokens := newTestUseCase()

	c, token, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, model.RoleCustomer, c.Role)
	assert.NotEqual(t, "s3cret-pass", c.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("s3cret-pass")))

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, c.ID, id.CustomerID)
	assert.Equal(t, c.Email, id.Email)

	stored, _ := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NotNil(t, stored)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, _, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, customer.ErrEmailTaken)
}

func TestRegisterRequiresFields(t *testing.T) {
	uc, _, _ := newTestUseCase()

	input := registerInput()
	input.Password = ""
	_, _, err := uc.Register(context.Background(), input)
	assert.ErrorIs(t, err, customer.ErrMissingFields)
}

func TestLoginVerifiesPassword(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, _, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	c, token, err := uc.Login(context.Background(), &dto.LoginInput{
		Email:    "jane@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.NotEmpty(t, token)

	_, _, err = uc.Login(context.Background(), &dto.LoginInput{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, customer.ErrInvalidCredentials)

	_, _, err = uc.Login(context.Background(), &dto.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, customer.ErrInvalidCredentials)
}

func TestGetCustomerRestrictedToSelf(t *testing.T) {
	uc, _, _ := newTestUseCase()

	c, _, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	got, err := uc.GetCustomer(context.Background(), c.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = uc.GetCustomer(context.Background(), "someone-else", c.ID)
	assert.ErrorIs(t, err, customer.ErrForbidden)
}

func TestUpdateCustomerMergesOptionalFields(t *testing.T) {
	uc, _, _ := newTestUseCase()

	c, _, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	phone := "+1-555-0100"
	updated, err := uc.UpdateCustomer(context.Background(), &dto.UpdateCustomerInput{
		ID:       c.ID,
		CallerID: c.ID,
		LastName: "Smith",
		Phone:    &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
}

func TestFaceDataLifecycle(t *testing.T) {
	uc, _, _ := newTestUseCase()

	c, _, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// No descriptor stored yet.
	data, err := uc.FaceStatus(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Nil(t, data)

	descriptor := `[0.12,-0.43,0.77]`
	require.NoError(t, uc.RegisterFace(context.Background(), c.ID, descriptor))

	data, err = uc.FaceStatus(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, descriptor, *data)

	require.NoError(t, uc.ResetFace(context.Background(), c.ID))

	data, err = uc.FaceStatus(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Nil(t, data)

	err = uc.RegisterFace(context.Background(), "missing", descriptor)
	assert.ErrorIs(t, err, customer.ErrNotFound)
}
