package admin

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fekuna/storefront-service/internal/model"
)

type DashboardStats struct {
	Products     []model.Product `json:"products"`
	Orders       []model.Order   `json:"orders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type UseCase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	CategoryReport(ctx context.Context) ([]map[string]interface{}, error)
}
