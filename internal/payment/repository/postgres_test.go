package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/payment"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func testPayment(orderID string) *model.Payment {
	now := time.Now()
	return &model.Payment{
		BaseModel:     model.BaseModel{ID: "pay1", CreatedAt: now, UpdatedAt: now},
		OrderID:       orderID,
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: "CARD",
		Status:        model.PaymentStatusCompleted,
	}
}

func TestCreateWithStatusUpdateFlipsOrderToProcessing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("PROCESSING", "o1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateWithStatusUpdate(context.Background(), testPayment("o1"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithStatusUpdateMapsUniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateWithStatusUpdate(context.Background(), testPayment("o1"))
	assert.ErrorIs(t, err, payment.ErrDuplicate)

	// The order status update must never run on a duplicate insert.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithStatusUpdateRollsBackWhenStatusUpdateFails(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateWithStatusUpdate(context.Background(), testPayment("o1"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
