package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/payment"
	"github.com/fekuna/storefront-service/internal/payment/dto"
	"github.com/fekuna/storefront-service/pkg/broker"
	"github.com/fekuna/storefront-service/pkg/cache"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type PaymentRecordedEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   PaymentPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type PaymentPayload struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
}

type paymentUseCase struct {
	repo     payment.Repository
	orders   order.Repository
	cache    *cache.RedisClient
	producer *broker.Producer
	logger   logger.ZapLogger
}

// NewPaymentUseCase wires the payment usecase. cache and producer may be nil;
// the redis lock then degrades to relying on the unique constraint alone.
func NewPaymentUseCase(repo payment.Repository, orders order.Repository, cache *cache.RedisClient, producer *broker.Producer, log logger.ZapLogger) payment.UseCase {
	return &paymentUseCase{
		repo:     repo,
		orders:   orders,
		cache:    cache,
		producer: producer,
		logger:   log,
	}
}

func (uc *paymentUseCase) CreatePayment(ctx context.Context, input *dto.CreatePaymentInput) (*model.Payment, error) {
	if input.OrderID == "" || input.Amount == nil || input.PaymentMethod == "" {
		return nil, payment.ErrMissingFields
	}

	// Narrow the duplicate-submit window with a short redis lock keyed on the
	// order. The unique payments.order_id constraint stays the hard guard.
	if uc.cache != nil {
		lockKey := fmt.Sprintf("lock:payment:%s", input.OrderID)
		lockValue := uuid.New().String()

		acquired := false
		for i := 0; i < 3; i++ {
			ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
			if err != nil {
				uc.logger.Error("failed to acquire payment lock", zap.Error(err))
			}
			if ok {
				acquired = true
				break
			}
			time.Sleep(100 * time.Millisecond)
		}
		if !acquired {
			return nil, payment.ErrBusy
		}
		defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)
	}

	// Verify the order exists and belongs to the caller.
	o, err := uc.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, payment.ErrOrderNotFound
	}
	if o.CustomerID != input.CustomerID {
		return nil, payment.ErrForbidden
	}

	existing, err := uc.repo.FindByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, payment.ErrDuplicate
	}

	// Exact equality, no tolerance band.
	if !input.Amount.Equal(o.Total) {
		return nil, payment.ErrAmountMismatch
	}

	now := time.Now()
	p := &model.Payment{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		OrderID:       input.OrderID,
		Amount:        *input.Amount,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		Status:        model.PaymentStatusCompleted,
	}

	if err := uc.repo.CreateWithStatusUpdate(ctx, p); err != nil {
		return nil, err
	}

	go uc.publishPaymentRecorded(p)

	uc.logger.Info("payment recorded",
		zap.String("payment_id", p.ID),
		zap.String("order_id", p.OrderID),
		zap.String("amount", p.Amount.String()),
	)
	return p, nil
}

func (uc *paymentUseCase) publishPaymentRecorded(p *model.Payment) {
	if uc.producer == nil {
		return
	}

	event := PaymentRecordedEvent{
		EventID:   uuid.New().String(),
		EventType: "PaymentRecorded",
		Payload: PaymentPayload{
			ID:      p.ID,
			OrderID: p.OrderID,
			Amount:  p.Amount,
			Method:  p.PaymentMethod,
		},
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal PaymentRecorded event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.producer.Publish(ctx, p.OrderID, data); err != nil {
		uc.logger.Error("failed to publish PaymentRecorded event",
			zap.String("order_id", p.OrderID), zap.Error(err))
	}
}

func (uc *paymentUseCase) GetPayment(ctx context.Context, callerID, orderID string) (*model.Payment, error) {
	p, err := uc.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, payment.ErrNotFound
	}

	o, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.CustomerID != callerID {
		return nil, payment.ErrForbidden
	}

	return p, nil
}
