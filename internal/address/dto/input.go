package dto

type CreateAddressInput struct {
	CustomerID string // from auth context
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}

type UpdateAddressInput struct {
	ID         string // from path
	CustomerID string // from auth context
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
	IsDefault  *bool  `json:"isDefault"`
}
