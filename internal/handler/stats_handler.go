package handler

import (
	"net/http"
	"strconv"

	"mesa-pos/internal/service"
	"mesa-pos/pkg/logger"
)

type StatsHandler struct {
	statsService service.StatsServiceInterface
	logger       *logger.Logger
}

func NewStatsHandler(s service.StatsServiceInterface, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: s,
		logger:       log.WithComponent("stats_handler"),
	}
}

// GetSalesStats handles GET /api/sales-stats?limit=N
func (h *StatsHandler) GetSalesStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	limit := service.DefaultPopularItemsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorResponse(w, log, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	stats, err := h.statsService.GetSalesStats(r.Context(), limit)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, stats)
}
