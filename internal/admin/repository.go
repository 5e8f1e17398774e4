package admin

import "context"

type Repository interface {
	// CategoryReport runs the database-side aggregation routine and returns
	// its rows as an opaque result set.
	CategoryReport(ctx context.Context) ([]map[string]interface{}, error)
}
