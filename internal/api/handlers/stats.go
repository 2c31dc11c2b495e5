package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/agarza/hoopstats/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsService *service.StatsService
	log          *zap.SugaredLogger
}

func NewStatsHandler(statsService *service.StatsService, log *zap.SugaredLogger) *StatsHandler {
	return &StatsHandler{statsService: statsService, log: log}
}

type StatsResponse struct {
	Stats domain.AggregateStats `json:"stats"`
	Daily []DailyStatsResponse  `json:"daily"`
}

type DailyStatsResponse struct {
	Date string `json:"date"`
	domain.DailyStats
}

type CompareResponse struct {
	Comparisons []domain.UserStats `json:"comparisons"`
}

// Get returns the aggregate summary and daily breakdown for an optional user
// and period. Explicit startDate/endDate override the period.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := service.StatsQuery{
		Period: periodParam(r),
	}

	if idStr := r.URL.Query().Get("userId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}
		query.UserID = &id
	}

	var err error
	if query.StartDate, err = parseDateParam(r, "startDate"); err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	if query.EndDate, err = parseDateParam(r, "endDate"); err != nil {
		http.Error(w, "Invalid end date", http.StatusBadRequest)
		return
	}

	result, err := h.statsService.GetStats(r.Context(), query)
	if err != nil {
		h.log.Errorw("failed to compute stats", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	daily := make([]DailyStatsResponse, 0, len(result.Daily))
	for _, day := range result.Daily {
		daily = append(daily, DailyStatsResponse{
			Date:       day.Date.Format(dateLayout),
			DailyStats: day,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatsResponse{
		Stats: result.Summary,
		Daily: daily,
	})
}

// Compare returns one stat line per requested user id, in request order.
func (h *StatsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	userIDsParam := r.URL.Query().Get("userIds")
	if userIDsParam == "" {
		http.Error(w, "User IDs are required", http.StatusBadRequest)
		return
	}

	var userIDs []uuid.UUID
	for _, idStr := range strings.Split(userIDsParam, ",") {
		idStr = strings.TrimSpace(idStr)
		if idStr == "" {
			continue
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}
		userIDs = append(userIDs, id)
	}

	comparisons, err := h.statsService.Compare(r.Context(), userIDs, periodParam(r))
	if err != nil {
		h.log.Errorw("failed to compare users", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompareResponse{Comparisons: comparisons})
}

func periodParam(r *http.Request) domain.Period {
	period := r.URL.Query().Get("period")
	if period == "" {
		return domain.PeriodAll
	}
	return domain.Period(period)
}
