package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateWithItems(ctx context.Context, o *model.Order) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
        INSERT INTO orders (id, customer_id, total, status, created_at, updated_at)
        VALUES (:id, :customer_id, :total, :status, :created_at, :updated_at)
    `, o)
	if err != nil {
		return err
	}

	stockQuery := `
        UPDATE products
        SET stock = stock - $1, updated_at = NOW()
        WHERE id = $2 AND stock >= $1
    `

	for i := range o.Items {
		item := &o.Items[i]

		res, err := tx.ExecContext(ctx, stockQuery, item.Quantity, item.ProductID)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			// Out of stock; abort the whole order.
			return fmt.Errorf("%w for product %s", order.ErrInsufficientStock, item.ProductID)
		}

		_, err = tx.NamedExecContext(ctx, `
            INSERT INTO order_items (id, order_id, product_id, quantity, price, created_at)
            VALUES (:id, :order_id, :product_id, :quantity, :price, :created_at)
        `, item)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, `SELECT * FROM orders WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := r.attachRelations(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *PGRepository) FindByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	var orders []model.Order
	query := `SELECT * FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &orders, query, customerID); err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.DB.SelectContext(ctx, &orders, `SELECT * FROM orders ORDER BY created_at DESC`); err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, orders); err != nil {
		return nil, err
	}
	if err := r.attachCustomers(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return order.ErrNotFound
	}
	return nil
}

// attachRelations loads items, their products, and payments for a set of orders.
func (r *PGRepository) attachRelations(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]string, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	query, args, err := sqlx.In(`SELECT * FROM order_items WHERE order_id IN (?) ORDER BY created_at`, orderIDs)
	if err != nil {
		return err
	}
	var items []model.OrderItem
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...); err != nil {
		return err
	}

	// Product summaries for the line items.
	productIDs := make([]string, 0, len(items))
	seen := map[string]bool{}
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			productIDs = append(productIDs, it.ProductID)
		}
	}

	productsByID := map[string]*model.Product{}
	if len(productIDs) > 0 {
		query, args, err = sqlx.In(`SELECT * FROM products WHERE id IN (?)`, productIDs)
		if err != nil {
			return err
		}
		var products []model.Product
		if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), args...); err != nil {
			return err
		}
		for i := range products {
			productsByID[products[i].ID] = &products[i]
		}
	}

	itemsByOrder := map[string][]model.OrderItem{}
	for _, it := range items {
		it.Product = productsByID[it.ProductID]
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	// Payments.
	query, args, err = sqlx.In(`SELECT * FROM payments WHERE order_id IN (?)`, orderIDs)
	if err != nil {
		return err
	}
	var payments []model.Payment
	if err := r.DB.SelectContext(ctx, &payments, r.DB.Rebind(query), args...); err != nil {
		return err
	}
	paymentsByOrder := map[string]*model.Payment{}
	for i := range payments {
		paymentsByOrder[payments[i].OrderID] = &payments[i]
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
		orders[i].Payment = paymentsByOrder[orders[i].ID]
	}
	return nil
}

func (r *PGRepository) attachCustomers(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	seen := map[string]bool{}
	for _, o := range orders {
		if !seen[o.CustomerID] {
			seen[o.CustomerID] = true
			ids = append(ids, o.CustomerID)
		}
	}

	query, args, err := sqlx.In(`SELECT * FROM customers WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	var customers []model.Customer
	if err := r.DB.SelectContext(ctx, &customers, r.DB.Rebind(query), args...); err != nil {
		return err
	}

	byID := map[string]*model.Customer{}
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}
	for i := range orders {
		orders[i].Customer = byID[orders[i].CustomerID]
	}
	return nil
}
