package dto

import "github.com/shopspring/decimal"

type CreatePaymentInput struct {
	// CustomerID comes from the auth context, not the request body.
	CustomerID    string
	OrderID       string           `json:"orderId"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod string           `json:"paymentMethod"`
	TransactionID *string          `json:"transactionId"`
}
