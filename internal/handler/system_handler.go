package handler

import (
	"net/http"

	"mesa-pos/internal/service"
	"mesa-pos/pkg/logger"
)

type SystemHandler struct {
	systemService service.SystemServiceInterface
	logger        *logger.Logger
}

func NewSystemHandler(systemService service.SystemServiceInterface, logger *logger.Logger) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		logger:        logger.WithComponent("system_handler"),
	}
}

// GetSystemStatus handles GET /api/system-status
func (h *SystemHandler) GetSystemStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	settings, err := h.systemService.GetSystemStatus(r.Context())
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, settings)
}

// Health handles GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	if err := h.systemService.Health(r.Context()); err != nil {
		writeJSONResponse(w, log, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}

	writeJSONResponse(w, log, http.StatusOK, map[string]string{"status": "ok"})
}
