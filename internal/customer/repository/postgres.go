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

func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (
            id, email, password, first_name, last_name, phone, role, face_data, created_at, updated_at
        )
        VALUES (
            :id, :email, :password, :first_name, :last_name, :phone, :role, :face_data, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	query := `SELECT * FROM customers WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	query := `SELECT * FROM customers WHERE email = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &customer, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET first_name = :first_name,
            last_name = :last_name,
            phone = :phone,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) SetFaceData(ctx context.Context, id string, faceData *string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE customers SET face_data = $1, updated_at = NOW() WHERE id = $2`,
		faceData, id,
	)
	return err
}
