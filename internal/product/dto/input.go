package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	CategoryID  string           `json:"categoryId"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
	ImageURL    *string          `json:"imageUrl"`
}

type UpdateProductInput struct {
	ID          string           // from path
	CategoryID  string           `json:"categoryId"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	ImageURL    *string          `json:"imageUrl"`
}
