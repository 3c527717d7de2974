package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/sbilibin2017/gw-dash-swap/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sseEvent struct {
	name string
	data string
}

func parseEvents(t *testing.T, body string) []sseEvent {
	t.Helper()

	var (
		events  []sseEvent
		current sseEvent
	)
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.data = strings.TrimPrefix(line, "data: ")
		case line == "":
			events = append(events, current)
			current = sseEvent{}
		}
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestFlowEventsHandler(t *testing.T) {
	flowID := uuid.New()
	target := "/flows/" + flowID.String() + "/events"

	t.Run("stops_after_terminal_state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockFlowSubscriber(ctrl)

		updates := make(chan models.FlowSnapshot, 3)
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateAwaitingTransfer}
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateCompleted}
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateIdle}

		unsubscribed := false
		svc.EXPECT().Subscribe(gomock.Any(), testUserID, flowID).
			Return((<-chan models.FlowSnapshot)(updates), func() { unsubscribed = true }, nil)

		rr := serve(NewFlowEventsHandler(svc, authedUser), http.MethodGet, "/flows/{id}/events", target, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		assert.True(t, unsubscribed)

		events := parseEvents(t, rr.Body.String())
		require.Len(t, events, 2)
		for _, ev := range events {
			assert.Equal(t, "snapshot", ev.name)
		}

		var last models.FlowSnapshot
		require.NoError(t, json.Unmarshal([]byte(events[1].data), &last))
		assert.Equal(t, models.StateCompleted, last.State)
	})

	t.Run("failed_flow_stays_open_for_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockFlowSubscriber(ctrl)

		updates := make(chan models.FlowSnapshot, 4)
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateFailed}
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateQuotePreview}
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateCancelled}
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateIdle}

		svc.EXPECT().Subscribe(gomock.Any(), testUserID, flowID).
			Return((<-chan models.FlowSnapshot)(updates), func() {}, nil)

		rr := serve(NewFlowEventsHandler(svc, authedUser), http.MethodGet, "/flows/{id}/events", target, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		events := parseEvents(t, rr.Body.String())
		require.Len(t, events, 3)

		var last models.FlowSnapshot
		require.NoError(t, json.Unmarshal([]byte(events[2].data), &last))
		assert.Equal(t, models.StateCancelled, last.State)
	})

	t.Run("stops_when_channel_closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockFlowSubscriber(ctrl)

		updates := make(chan models.FlowSnapshot, 1)
		updates <- models.FlowSnapshot{ID: flowID, State: models.StateQuotePreview}
		close(updates)

		svc.EXPECT().Subscribe(gomock.Any(), testUserID, flowID).
			Return((<-chan models.FlowSnapshot)(updates), func() {}, nil)

		rr := serve(NewFlowEventsHandler(svc, authedUser), http.MethodGet, "/flows/{id}/events", target, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, parseEvents(t, rr.Body.String()), 1)
	})

	t.Run("unknown_flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockFlowSubscriber(ctrl)
		svc.EXPECT().Subscribe(gomock.Any(), testUserID, flowID).
			Return(nil, nil, services.ErrFlowNotFound)

		rr := serve(NewFlowEventsHandler(svc, authedUser), http.MethodGet, "/flows/{id}/events", target, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockFlowSubscriber(ctrl)

		rr := serve(NewFlowEventsHandler(svc, anonymousUser), http.MethodGet, "/flows/{id}/events", target, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestExchangeRateStreamHandler(t *testing.T) {
	const interval = 5 * time.Second

	t.Run("streams_rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockExchangeRateObserver(ctrl)

		rates := make(chan models.ExchangeRate, 2)
		rates <- models.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("30.5")}
		rates <- models.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("30.75")}
		close(rates)

		svc.EXPECT().ObserveExchangeRate(gomock.Any(), "USD", interval).
			Return((<-chan models.ExchangeRate)(rates))

		rr := serve(NewExchangeRateStreamHandler(svc, authedUser, interval), http.MethodGet, "/rates/{currency}/stream", "/rates/usd/stream", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		events := parseEvents(t, rr.Body.String())
		require.Len(t, events, 2)
		assert.Equal(t, "rate", events[0].name)

		var got models.ExchangeRate
		require.NoError(t, json.Unmarshal([]byte(events[1].data), &got))
		assert.True(t, decimal.RequireFromString("30.75").Equal(got.Rate))
	})

	t.Run("passes_request_context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockExchangeRateObserver(ctrl)

		svc.EXPECT().ObserveExchangeRate(gomock.Any(), "EUR", interval).
			DoAndReturn(func(ctx context.Context, code string, _ time.Duration) <-chan models.ExchangeRate {
				assert.NotNil(t, ctx)
				ch := make(chan models.ExchangeRate)
				close(ch)
				return ch
			})

		rr := serve(NewExchangeRateStreamHandler(svc, authedUser, interval), http.MethodGet, "/rates/{currency}/stream", "/rates/EUR/stream", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, parseEvents(t, rr.Body.String()))
	})

	t.Run("invalid_currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockExchangeRateObserver(ctrl)

		rr := serve(NewExchangeRateStreamHandler(svc, authedUser, interval), http.MethodGet, "/rates/{currency}/stream", "/rates/DOLLAR/stream", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
