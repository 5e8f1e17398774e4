package model

import "github.com/shopspring/decimal"

type Category struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Description *string `db:"description" json:"description"`

	ProductCount int       `db:"product_count" json:"productCount"`
	Products     []Product `db:"-" json:"products,omitempty"` // Joined data
}

type Product struct {
	BaseModel
	CategoryID  string          `db:"category_id" json:"categoryId"`
	Name        string          `db:"name" json:"name"`
	Slug        string          `db:"slug" json:"slug"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Stock       int             `db:"stock" json:"stock"`
	ImageURL    *string         `db:"image_url" json:"imageUrl"`

	Category *Category `db:"-" json:"category,omitempty"` // Joined data
}
