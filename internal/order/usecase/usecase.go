package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/order/dto"
	"github.com/fekuna/storefront-service/internal/product"
	"github.com/fekuna/storefront-service/pkg/broker"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Total      decimal.Decimal    `json:"total"`
	Items      []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderUseCase struct {
	repo     order.Repository
	products product.Repository
	producer *broker.Producer
	logger   logger.ZapLogger
}

// NewOrderUseCase wires the order usecase. producer may be nil; event
// publishing is best effort.
func NewOrderUseCase(repo order.Repository, products product.Repository, producer *broker.Producer, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:     repo,
		products: products,
		producer: producer,
		logger:   log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, order.ErrEmptyOrder
	}

	productIDs := make([]string, len(input.Items))
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
		productIDs[i] = item.ProductID
	}

	// Fetch all referenced products in one query.
	products, err := uc.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[string]*model.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	now := time.Now()
	orderID := uuid.New().String()
	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(input.Items))

	for _, item := range input.Items {
		p, ok := productsByID[item.ProductID]
		if !ok {
			return nil, order.ErrProductNotFound
		}

		// Snapshot the unit price at order time.
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, model.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     p.Price,
			CreatedAt: now,
		})
	}

	o := &model.Order{
		BaseModel:  model.BaseModel{ID: orderID, CreatedAt: now, UpdatedAt: now},
		CustomerID: input.CustomerID,
		Total:      total,
		Status:     model.OrderStatusPending,
		Items:      items,
	}

	if err := uc.repo.CreateWithItems(ctx, o); err != nil {
		return nil, err
	}

	// Attach product summaries for the response.
	for i := range o.Items {
		o.Items[i].Product = productsByID[o.Items[i].ProductID]
	}

	go uc.publishOrderCreated(o)

	uc.logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("customer_id", o.CustomerID),
		zap.String("total", o.Total.String()),
	)
	return o, nil
}

func (uc *orderUseCase) publishOrderCreated(o *model.Order) {
	if uc.producer == nil {
		return
	}

	itemPayloads := make([]OrderItemPayload, len(o.Items))
	for i, item := range o.Items {
		itemPayloads[i] = OrderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	event := OrderCreatedEvent{
		EventID:   uuid.New().String(),
		EventType: "OrderCreated",
		Payload: OrderPayload{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			Total:      o.Total,
			Items:      itemPayloads,
		},
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal OrderCreated event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.producer.Publish(ctx, o.ID, data); err != nil {
		uc.logger.Error("failed to publish OrderCreated event",
			zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (uc *orderUseCase) ListOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return uc.repo.FindByCustomer(ctx, customerID)
}

func (uc *orderUseCase) GetOrder(ctx context.Context, callerID, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrNotFound
	}
	if o.CustomerID != callerID {
		return nil, order.ErrForbidden
	}
	return o, nil
}

func (uc *orderUseCase) UpdateStatus(ctx context.Context, orderID string, status string) (*model.Order, error) {
	s := model.OrderStatus(status)
	if !s.Valid() {
		return nil, order.ErrInvalidStatus
	}

	if err := uc.repo.UpdateStatus(ctx, orderID, s); err != nil {
		return nil, err
	}

	o, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrNotFound
	}
	return o, nil
}
