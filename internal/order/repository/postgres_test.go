package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func testOrder(items ...model.OrderItem) *model.Order {
	now := time.Now()
	return &model.Order{
		BaseModel:  model.BaseModel{ID: "o1", CreatedAt: now, UpdatedAt: now},
		CustomerID: "c1",
		Total:      decimal.RequireFromString("100.00"),
		Status:     model.OrderStatusPending,
		Items:      items,
	}
}

func testItem(productID string, qty int) model.OrderItem {
	return model.OrderItem{
		ID:        "item-" + productID,
		OrderID:   "o1",
		ProductID: productID,
		Quantity:  qty,
		Price:     decimal.RequireFromString("50.00"),
		CreatedAt: time.Now(),
	}
}

func TestCreateWithItemsDecrementsStockPerItem(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(2, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(1, "p2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateWithItems(context.Background(), testOrder(testItem("p1", 2), testItem("p2", 1)))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItemsRollsBackOnInsufficientStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Conditional decrement matches no row: not enough stock.
	mock.ExpectExec("UPDATE products").
		WithArgs(5, "p1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), testOrder(testItem("p1", 5)))
	assert.ErrorIs(t, err, order.ErrInsufficientStock)

	// Neither the line item insert nor the commit may happen.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItemsAbortsMidwayWithoutCommitting(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(2, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Second item runs dry after the first already decremented.
	mock.ExpectExec("UPDATE products").
		WithArgs(3, "p2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), testOrder(testItem("p1", 2), testItem("p2", 3)))
	assert.ErrorIs(t, err, order.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
