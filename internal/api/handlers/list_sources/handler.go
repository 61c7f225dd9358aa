package list_sources

import (
	"net/http"

	"github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers"
)

type Handler struct {
	service SourceService
	logger  Logger
}

func NewHandler(service SourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем список источников
	sources, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /sources - Failed to list sources: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sources - Sources listed: count=%d", len(sources.Sources))
	handlers.RespondJSON(w, http.StatusOK, sources)
}
