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

func (r *PGRepository) Create(ctx context.Context, cat *model.Category) error {
	query := `
        INSERT INTO categories (id, name, slug, description, created_at, updated_at)
        VALUES (:id, :name, :slug, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, cat)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var cat model.Category
	query := `
        SELECT c.*, (SELECT count(*) FROM products p WHERE p.category_id = c.id) AS product_count
        FROM categories c
        WHERE c.id = $1
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &cat, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	query := `
        SELECT c.*, (SELECT count(*) FROM products p WHERE p.category_id = c.id) AS product_count
        FROM categories c
        ORDER BY c.name
    `
	if err := r.DB.SelectContext(ctx, &cats, query); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *PGRepository) FindProducts(ctx context.Context, categoryID string) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products WHERE category_id = $1 ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &products, query, categoryID); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, cat *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            slug = :slug,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, cat)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}

func (r *PGRepository) IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM categories WHERE slug = $1`
	args := []interface{}{slug}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
