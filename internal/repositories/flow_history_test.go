package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

var flowHistoryColumns = []string{
	"flow_id", "user_id", "kind", "state", "dash_amount", "fiat_amount", "fiat_currency",
	"order_id", "transaction_id", "failure_kind", "created_at", "finished_at",
}

func TestFlowHistoryRepository_Save(t *testing.T) {
	ctx := context.Background()
	record := models.FlowRecord{
		FlowID:       uuid.New(),
		UserID:       uuid.New(),
		Kind:         models.FlowBuy,
		State:        models.StateCompleted,
		DashAmount:   decimal.RequireFromString("0.5"),
		FiatAmount:   decimal.RequireFromString("25"),
		FiatCurrency: "USD",
		OrderID:      "buy-1",
		CreatedAt:    time.Now().Add(-time.Minute),
		FinishedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		execErr error
	}{
		{name: "upsert"},
		{name: "db_error", execErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO flow_history")).
				WithArgs(
					record.FlowID.String(), record.UserID.String(), string(record.Kind), string(record.State),
					"0.5", "25", "USD", "buy-1", "", "",
					sqlmock.AnyArg(), sqlmock.AnyArg(),
				)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := NewFlowHistoryRepository(db).Save(ctx, record)
			if tt.execErr != nil {
				assert.ErrorIs(t, err, tt.execErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFlowHistoryRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	flowID := uuid.New()
	finished := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("rows", func(t *testing.T) {
		db, mock := newMockDB(t)

		rows := sqlmock.NewRows(flowHistoryColumns).
			AddRow(flowID.String(), userID.String(), "convert", "failed", "1.25", "60.00", "EUR",
				"trade-1", "", "insufficient_balance", finished.Add(-time.Minute), finished)
		mock.ExpectQuery(regexp.QuoteMeta("FROM flow_history")).
			WithArgs(userID, 20).
			WillReturnRows(rows)

		records, err := NewFlowHistoryRepository(db).ListByUser(ctx, userID, 20)
		require.NoError(t, err)
		require.Len(t, records, 1)

		got := records[0]
		assert.Equal(t, flowID, got.FlowID)
		assert.Equal(t, models.FlowConvert, got.Kind)
		assert.Equal(t, models.StateFailed, got.State)
		assert.True(t, decimal.RequireFromString("1.25").Equal(got.DashAmount))
		assert.Equal(t, "insufficient_balance", got.FailureKind)
		assert.Equal(t, finished, got.FinishedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM flow_history")).
			WithArgs(userID, 20).
			WillReturnRows(sqlmock.NewRows(flowHistoryColumns))

		records, err := NewFlowHistoryRepository(db).ListByUser(ctx, userID, 20)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.NotNil(t, records)
	})

	t.Run("db_error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM flow_history")).
			WillReturnError(errors.New("timeout"))

		records, err := NewFlowHistoryRepository(db).ListByUser(ctx, userID, 20)
		assert.Error(t, err)
		assert.Nil(t, records)
	})
}

func TestFlowHistoryRepository_Migrate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS flow_history")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewFlowHistoryRepository(db).Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
