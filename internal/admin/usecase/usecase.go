package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fekuna/storefront-service/internal/admin"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/product"
	productdto "github.com/fekuna/storefront-service/internal/product/dto"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type adminUseCase struct {
	repo     admin.Repository
	products product.Repository
	orders   order.Repository
	logger   logger.ZapLogger
}

func NewAdminUseCase(repo admin.Repository, products product.Repository, orders order.Repository, log logger.ZapLogger) admin.UseCase {
	return &adminUseCase{
		repo:     repo,
		products: products,
		orders:   orders,
		logger:   log,
	}
}

// DashboardStats loads the full product and order collections and reduces
// revenue in memory. Fine at dashboard-scale data volumes.
func (uc *adminUseCase) DashboardStats(ctx context.Context) (*admin.DashboardStats, error) {
	products, _, err := uc.products.FindAll(ctx, &productdto.ProductFilters{})
	if err != nil {
		return nil, err
	}

	orders, err := uc.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.Total)
	}

	return &admin.DashboardStats{
		Products:     products,
		Orders:       orders,
		TotalRevenue: totalRevenue,
	}, nil
}

func (uc *adminUseCase) CategoryReport(ctx context.Context) ([]map[string]interface{}, error) {
	return uc.repo.CategoryReport(ctx)
}
