package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/order/dto"
	productdto "github.com/fekuna/storefront-service/internal/product/dto"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type fakeOrderRepo struct {
	orders    map[string]*model.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*model.Order)}
}

func (r *fakeOrderRepo) CreateWithItems(ctx context.Context, o *model.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) FindByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return order.ErrNotFound
	}
	o.Status = status
	return nil
}

type fakeProductRepo struct {
	products map[string]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*model.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	var out []model.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, filters *productdto.ProductFilters) ([]model.Product, int, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error) {
	return true, nil
}

func (r *fakeProductRepo) AdjustStock(ctx context.Context, productID string, delta int) error {
	p, ok := r.products[productID]
	if !ok {
		return nil
	}
	p.Stock += delta
	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProduct(id, name string, unitPrice string, stock int) *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: id},
		Name:      name,
		Slug:      name,
		Price:     price(unitPrice),
		Stock:     stock,
	}
}

func TestCreateOrderComputesTotalFromSnapshotPrices(t *testing.T) {
	repo := newFakeOrderRepo()
	products := newFakeProductRepo(
		testProduct("p1", "widget", "50.00", 10),
		testProduct("p2", "gadget", "19.99", 10),
	)
	uc := NewOrderUseCase(repo, products, nil, logger.NewNop())

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: "c1",
		Items: []dto.OrderItemInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, o.Total.Equal(price("119.99")), "expected 119.99, got %s", o.Total)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.Equal(t, "c1", o.CustomerID)
	require.Len(t, o.Items, 2)
	assert.True(t, o.Items[0].Price.Equal(price("50.00")))
	assert.Equal(t, o.ID, o.Items[0].OrderID)

	stored, ok := repo.orders[o.ID]
	require.True(t, ok, "order not persisted")
	assert.Len(t, stored.Items, 2)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo(), newFakeProductRepo(), nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{CustomerID: "c1"})
	assert.ErrorIs(t, err, order.ErrEmptyOrder)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "widget", "10.00", 5))
	uc := NewOrderUseCase(newFakeOrderRepo(), products, nil, logger.NewNop())

	for _, qty := range []int{0, -1} {
		_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
			CustomerID: "c1",
			Items:      []dto.OrderItemInput{{ProductID: "p1", Quantity: qty}},
		})
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	}
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "widget", "10.00", 5))
	uc := NewOrderUseCase(newFakeOrderRepo(), products, nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: "c1",
		Items: []dto.OrderItemInput{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "missing", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, order.ErrProductNotFound)
}

func TestCreateOrderPropagatesInsufficientStock(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.createErr = order.ErrInsufficientStock
	products := newFakeProductRepo(testProduct("p1", "widget", "10.00", 1))
	uc := NewOrderUseCase(repo, products, nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: "c1",
		Items:      []dto.OrderItemInput{{ProductID: "p1", Quantity: 5}},
	})
	assert.ErrorIs(t, err, order.ErrInsufficientStock)
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.orders["o1"] = &model.Order{
		BaseModel:  model.BaseModel{ID: "o1"},
		CustomerID: "c1",
		Status:     model.OrderStatusPending,
	}
	uc := NewOrderUseCase(repo, newFakeProductRepo(), nil, logger.NewNop())

	o, err := uc.GetOrder(context.Background(), "c1", "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)

	_, err = uc.GetOrder(context.Background(), "c2", "o1")
	assert.ErrorIs(t, err, order.ErrForbidden)

	_, err = uc.GetOrder(context.Background(), "c1", "missing")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestUpdateStatusValidatesTransition(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.orders["o1"] = &model.Order{
		BaseModel:  model.BaseModel{ID: "o1"},
		CustomerID: "c1",
		Status:     model.OrderStatusPending,
	}
	uc := NewOrderUseCase(repo, newFakeProductRepo(), nil, logger.NewNop())

	o, err := uc.UpdateStatus(context.Background(), "o1", "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, o.Status)

	_, err = uc.UpdateStatus(context.Background(), "o1", "SHIPPED")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)

	_, err = uc.UpdateStatus(context.Background(), "missing", "CANCELLED")
	assert.ErrorIs(t, err, order.ErrNotFound)
}
