package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CategoryReport(ctx context.Context) ([]map[string]interface{}, error) {
	rows, err := r.DB.QueryxContext(ctx, `SELECT * FROM get_categories_report()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []map[string]interface{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		// Postgres text columns come back as []byte from MapScan.
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		report = append(report, row)
	}

	return report, rows.Err()
}
