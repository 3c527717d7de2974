package services

//go:generate mockgen -source=history.go -destination=history_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/segmentio/kafka-go"
)

// FlowRecordWriter persists terminal flow outcomes.
type FlowRecordWriter interface {
	Save(ctx context.Context, record models.FlowRecord) error // Inserts or updates the record of a flow
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FlowHistory stores flow outcomes and publishes them to Kafka.
type FlowHistory struct {
	repo        FlowRecordWriter
	kafkaWriter KafkaWriter
}

// NewFlowHistory creates a new FlowHistory. Either collaborator may be nil.
func NewFlowHistory(repo FlowRecordWriter, kafkaWriter KafkaWriter) *FlowHistory {
	return &FlowHistory{
		repo:        repo,
		kafkaWriter: kafkaWriter,
	}
}

// Record saves and publishes a terminal flow outcome. Failures are logged
// and never reach the flow.
func (h *FlowHistory) Record(ctx context.Context, record models.FlowRecord) {
	if h.repo != nil {
		if err := h.repo.Save(ctx, record); err != nil {
			logger.Log.Errorw("failed to save flow record", "flow_id", record.FlowID, "state", record.State, "error", err)
		}
	}
	h.publish(ctx, record)
}

// publish publishes a flow record to Kafka.
func (h *FlowHistory) publish(ctx context.Context, record models.FlowRecord) {
	if h.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "flow_id", record.FlowID)
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.Log.Errorw("Failed to marshal flow record for Kafka", "flow_id", record.FlowID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(record.FlowID.String()),
		Value: data,
	}

	if err := h.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish flow record to Kafka", "flow_id", record.FlowID, "error", err)
	} else {
		logger.Log.Infow("Flow record published to Kafka", "flow_id", record.FlowID, "state", record.State, "dash_amount", record.DashAmount)
	}
}
