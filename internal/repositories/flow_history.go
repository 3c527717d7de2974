package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// FlowHistorySchema creates the flow_history table.
const FlowHistorySchema = `
	CREATE TABLE IF NOT EXISTS flow_history (
		flow_id        UUID PRIMARY KEY,
		user_id        UUID NOT NULL,
		kind           VARCHAR(32) NOT NULL,
		state          VARCHAR(32) NOT NULL,
		dash_amount    NUMERIC(28,8) NOT NULL DEFAULT 0,
		fiat_amount    NUMERIC(28,8) NOT NULL DEFAULT 0,
		fiat_currency  CHAR(3) NOT NULL,
		order_id       VARCHAR(64) NOT NULL DEFAULT '',
		transaction_id VARCHAR(128) NOT NULL DEFAULT '',
		failure_kind   VARCHAR(64) NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL,
		finished_at    TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS flow_history_user_idx ON flow_history (user_id, finished_at DESC);
`

// FlowHistoryRepository stores terminal flow outcomes in Postgres
type FlowHistoryRepository struct {
	db *sqlx.DB
}

// NewFlowHistoryRepository creates a new repository instance
func NewFlowHistoryRepository(db *sqlx.DB) *FlowHistoryRepository {
	return &FlowHistoryRepository{db: db}
}

// Migrate creates the table if it does not exist
func (r *FlowHistoryRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, FlowHistorySchema)
	if err != nil {
		logger.Log.Errorw("failed to migrate flow_history", "error", err)
	}
	return err
}

// Save performs an UPSERT keyed by flow id: a flow that fails, is retried and
// later completes keeps a single row with its latest outcome.
func (r *FlowHistoryRepository) Save(ctx context.Context, record models.FlowRecord) error {
	query := `
		INSERT INTO flow_history (
			flow_id, user_id, kind, state, dash_amount, fiat_amount, fiat_currency,
			order_id, transaction_id, failure_kind, created_at, finished_at
		)
		VALUES (
			:flow_id, :user_id, :kind, :state, :dash_amount, :fiat_amount, :fiat_currency,
			:order_id, :transaction_id, :failure_kind, :created_at, :finished_at
		)
		ON CONFLICT (flow_id) DO UPDATE SET
			state = EXCLUDED.state,
			dash_amount = EXCLUDED.dash_amount,
			fiat_amount = EXCLUDED.fiat_amount,
			order_id = EXCLUDED.order_id,
			transaction_id = EXCLUDED.transaction_id,
			failure_kind = EXCLUDED.failure_kind,
			finished_at = EXCLUDED.finished_at
	`

	_, err := r.db.NamedExecContext(ctx, query, record)

	logger.Log.Infow("save flow record",
		"query", strings.Join(strings.Fields(query), " "),
		"flow_id", record.FlowID,
		"state", record.State,
		"error", err,
	)

	return err
}

// ListByUser returns the latest outcomes of the user's flows, newest first
func (r *FlowHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.FlowRecord, error) {
	const query = `
		SELECT flow_id, user_id, kind, state, dash_amount, fiat_amount, fiat_currency,
			order_id, transaction_id, failure_kind, created_at, finished_at
		FROM flow_history
		WHERE user_id = $1
		ORDER BY finished_at DESC
		LIMIT $2
	`

	records := []models.FlowRecord{}
	err := r.db.SelectContext(ctx, &records, query, userID, limit)

	logger.Log.Infow("list flow records",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}
