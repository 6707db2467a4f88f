package repository

import (
	"testing"

	"shop_backoffice/internal/domain/order/model"
	baseModel "shop_backoffice/pkg/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	assert.NoError(t, err)
	return db, mock
}

func TestCancel(t *testing.T) {
	order := &model.Order{
		BaseModel: baseModel.BaseModel{ID: "order-1"},
		Status:    model.StatusPending,
	}
	restocks := []model.StockDeduction{{ProductID: "prod-1", Quantity: 2}}

	t.Run("flips status and restores stock in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepository(db, nil)

		mock.ExpectBegin()
		// 条件 UPDATE：终态订单不满足 WHERE，不会被改写
		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "products" SET "stock_quantity"=stock_quantity \+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Cancel(order, restocks)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent cancel loses and rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Cancel(order, restocks)
		assert.ErrorIs(t, err, model.ErrAlreadyCancelled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
