package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/payment"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateWithStatusUpdate(ctx context.Context, p *model.Payment) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
        INSERT INTO payments (id, order_id, amount, payment_method, transaction_id, status, created_at, updated_at)
        VALUES (:id, :order_id, :amount, :payment_method, :transaction_id, :status, :created_at, :updated_at)
    `, p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// payments.order_id unique constraint
			return payment.ErrDuplicate
		}
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		model.OrderStatusProcessing, p.OrderID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM payments WHERE order_id = $1 LIMIT 1`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
