package handlers

//go:generate mockgen -source=history.go -destination=history_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// Page size bounds of the history endpoint
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// FlowHistoryReader reads finished flows of a user.
type FlowHistoryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.FlowRecord, error)
}

// NewGetHistoryHandler returns an HTTP handler listing the finished flows of the user.
// @Summary Get flow history
// @Description Lists the outcomes of the user's finished flows, newest first
// @Tags flows
// @Produce json
// @Param limit query int false "Page size, 1 to 100"
// @Success 200 {object} models.FlowHistoryResponse "Flow history"
// @Failure 400 {object} models.FlowErrorResponse "Invalid limit"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 500 {object} models.FlowErrorResponse "Internal server error"
// @Router /history [get]
// @Security BearerAuth
func NewGetHistoryHandler(repo FlowHistoryReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r, userIDGetter)
		if !ok {
			return
		}

		limit := defaultHistoryLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxHistoryLimit {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			limit = n
		}

		records, err := repo.ListByUser(r.Context(), userID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list flow history", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.FlowHistoryResponse{Flows: records})
	}
}
