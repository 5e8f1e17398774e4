package dto

type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderInput struct {
	// CustomerID comes from the auth context, not the request body.
	CustomerID string
	Items      []OrderItemInput `json:"items"`
}
