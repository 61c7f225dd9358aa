package get_sites

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
)

const msgNoDataset = "расписание еще не загружено"

type Handler struct {
	service OccupancyService
	logger  Logger
}

func NewHandler(service OccupancyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем площадки из сервиса
	sites, err := h.service.Sites()
	if err != nil {
		if errors.Is(err, occupancy.ErrNoDataset) {
			h.logger.Warn("GET /sites - No dataset loaded")
			handlers.RespondConflict(w, msgNoDataset)
			return
		}
		h.logger.Error("GET /sites - Failed to list sites: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sites - Sites listed: count=%d", len(sites.Sites))
	handlers.RespondJSON(w, http.StatusOK, sites)
}
