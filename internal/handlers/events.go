package handlers

//go:generate mockgen -source=events.go -destination=events_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// FlowSubscriber streams the snapshots of a flow.
type FlowSubscriber interface {
	Subscribe(ctx context.Context, userID, flowID uuid.UUID) (<-chan models.FlowSnapshot, func(), error)
}

// ExchangeRateObserver streams the DASH exchange rate of a currency.
type ExchangeRateObserver interface {
	ObserveExchangeRate(ctx context.Context, currencyCode string, interval time.Duration) <-chan models.ExchangeRate
}

// eventStream writes Server-Sent Events.
type eventStream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func startEventStream(w http.ResponseWriter) (*eventStream, error) {
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		return nil, err
	}
	return &eventStream{w: w, rc: rc}, nil
}

func (s *eventStream) send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return s.rc.Flush()
}

// NewFlowEventsHandler returns an HTTP handler streaming flow snapshots.
// @Summary Stream flow events
// @Description Server-Sent Events stream of flow snapshots. The current snapshot is sent first. The stream ends once the flow is completed or cancelled; a failed flow stays open for a retry.
// @Tags flows
// @Produce text/event-stream
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot "snapshot events"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Router /flows/{id}/events [get]
// @Security BearerAuth
func NewFlowEventsHandler(svc FlowSubscriber, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, flowID, ok := requestFlow(w, r, userIDGetter)
		if !ok {
			return
		}
		ctx := r.Context()

		updates, unsubscribe, err := svc.Subscribe(ctx, userID, flowID)
		if err != nil {
			writeFlowResult(w, models.FlowSnapshot{}, err)
			return
		}
		defer unsubscribe()

		stream, err := startEventStream(w)
		if err != nil {
			logger.Log.Errorw("streaming not supported", "error", err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-updates:
				if !ok {
					return
				}
				if err := stream.send("snapshot", snap); err != nil {
					logger.Log.Warnw("failed to write flow event", "flow_id", flowID, "error", err)
					return
				}
				if snap.State.Final() {
					return
				}
			}
		}
	}
}

// NewExchangeRateStreamHandler returns an HTTP handler streaming the DASH
// exchange rate of a currency, polled every interval.
// @Summary Stream exchange rate
// @Description Server-Sent Events stream of the DASH exchange rate, sent when it changes
// @Tags rates
// @Produce text/event-stream
// @Param currency path string true "Currency code"
// @Success 200 {object} models.ExchangeRate "rate events"
// @Failure 400 {object} models.ExchangeRateErrorResponse "Invalid currency"
// @Failure 401 {object} models.ExchangeRateErrorResponse "Unauthorized"
// @Router /rates/{currency}/stream [get]
// @Security BearerAuth
func NewExchangeRateStreamHandler(svc ExchangeRateObserver, userIDGetter UserIDGetter, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestUser(w, r, userIDGetter); !ok {
			return
		}

		code := strings.ToUpper(chi.URLParam(r, "currency"))
		if len(code) != 3 {
			writeJSON(w, http.StatusBadRequest, models.ExchangeRateErrorResponse{Error: "Invalid currency"})
			return
		}

		stream, err := startEventStream(w)
		if err != nil {
			logger.Log.Errorw("streaming not supported", "error", err)
			return
		}

		for rate := range svc.ObserveExchangeRate(r.Context(), code, interval) {
			if err := stream.send("rate", rate); err != nil {
				logger.Log.Warnw("failed to write rate event", "currency", code, "error", err)
				return
			}
		}
	}
}
