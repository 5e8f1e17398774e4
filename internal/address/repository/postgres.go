package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/storefront-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const insertQuery = `
    INSERT INTO addresses (
        id, customer_id, street, city, state, zip_code, country, is_default, created_at, updated_at
    )
    VALUES (
        :id, :customer_id, :street, :city, :state, :zip_code, :country, :is_default, :created_at, :updated_at
    )
`

const updateQuery = `
    UPDATE addresses
    SET street = :street,
        city = :city,
        state = :state,
        zip_code = :zip_code,
        country = :country,
        is_default = :is_default,
        updated_at = :updated_at
    WHERE id = :id AND customer_id = :customer_id
`

func (r *PGRepository) Create(ctx context.Context, a *model.Address) error {
	_, err := r.DB.NamedExecContext(ctx, insertQuery, a)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Address, error) {
	var addr model.Address
	err := r.DB.GetContext(ctx, &addr, `SELECT * FROM addresses WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &addr, nil
}

func (r *PGRepository) FindByCustomer(ctx context.Context, customerID string) ([]model.Address, error) {
	var addrs []model.Address
	query := `SELECT * FROM addresses WHERE customer_id = $1 ORDER BY is_default DESC, created_at DESC`
	if err := r.DB.SelectContext(ctx, &addrs, query, customerID); err != nil {
		return nil, err
	}
	return addrs, nil
}

func (r *PGRepository) Update(ctx context.Context, a *model.Address) error {
	_, err := r.DB.NamedExecContext(ctx, updateQuery, a)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	return err
}

func (r *PGRepository) SaveAsDefault(ctx context.Context, a *model.Address, insert bool) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE addresses SET is_default = false, updated_at = NOW() WHERE customer_id = $1 AND id != $2`,
		a.CustomerID, a.ID,
	)
	if err != nil {
		return err
	}

	query := updateQuery
	if insert {
		query = insertQuery
	}
	if _, err := tx.NamedExecContext(ctx, query, a); err != nil {
		return err
	}

	return tx.Commit()
}
