package handler

import (
	"net/http"

	"mesa-pos/internal/service"
	"mesa-pos/pkg/logger"
)

type MenuHandler struct {
	menuService service.MenuServiceInterface
	logger      *logger.Logger
}

func NewMenuHandler(menuService service.MenuServiceInterface, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger.WithComponent("menu_handler"),
	}
}

// GetMenu handles GET /api/menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	items, err := h.menuService.GetMenu(r.Context())
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, items)
}
