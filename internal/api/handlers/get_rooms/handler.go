package get_rooms

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

// Handle GET /api/v1/sites/{site}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем site из URL
	site := mux.Vars(r)["site"]

	// Получаем аудитории из сервиса
	rooms, err := h.service.Rooms(site)
	if err != nil {
		if errors.Is(err, occupancy.ErrNoDataset) {
			h.logger.Warn("GET /sites/{site}/rooms - No dataset loaded")
			handlers.RespondConflict(w, msgNoDataset)
			return
		}
		h.logger.Error("GET /sites/{site}/rooms - Failed to list rooms: site=%s, error=%v", site, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sites/{site}/rooms - Rooms listed: site=%s, count=%d", site, len(rooms.Rooms))
	handlers.RespondJSON(w, http.StatusOK, rooms)
}
