package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	BaseModel
	CustomerID string          `db:"customer_id" json:"customerId"`
	Total      decimal.Decimal `db:"total" json:"total"`
	Status     OrderStatus     `db:"status" json:"status"`

	Items    []OrderItem `db:"-" json:"orderItems,omitempty"`
	Payment  *Payment    `db:"-" json:"payment,omitempty"`
	Customer *Customer   `db:"-" json:"customer,omitempty"`
}

type OrderItem struct {
	ID        string          `db:"id" json:"id"`
	OrderID   string          `db:"order_id" json:"orderId"`
	ProductID string          `db:"product_id" json:"productId"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"` // unit price snapshot, immutable after creation
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`

	Product *Product `db:"-" json:"product,omitempty"`
}

const PaymentStatusCompleted = "COMPLETED"

type Payment struct {
	BaseModel
	OrderID       string          `db:"order_id" json:"orderId"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod string          `db:"payment_method" json:"paymentMethod"`
	TransactionID *string         `db:"transaction_id" json:"transactionId"`
	Status        string          `db:"status" json:"status"`
}
