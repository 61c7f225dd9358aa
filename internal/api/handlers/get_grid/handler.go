package get_grid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy/models"
)

const (
	msgInvalidWeek  = "некорректный номер недели"
	msgInvalidDay   = "некорректный день недели"
	msgNoDataset    = "расписание еще не загружено"
	msgSiteNotFound = "площадка не найдена"
)

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

// Handle GET /api/v1/sites/{site}/grid?week=&day=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем site из URL
	site := mux.Vars(r)["site"]

	// Читаем параметры запроса
	week, err := handlers.RequireQueryInt(r, "week")
	if err != nil {
		h.logger.Warn("GET /sites/{site}/grid - Invalid week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	day, err := handlers.RequireQueryInt(r, "day")
	if err != nil {
		h.logger.Warn("GET /sites/{site}/grid - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	// Получаем сетку занятости из сервиса
	grid, err := h.service.Grid(&models.GridRequest{Site: site, Week: week, Weekday: day})
	// Обработка ошибок
	if err != nil {
		switch {
		case errors.Is(err, occupancy.ErrNoDataset):
			h.logger.Warn("GET /sites/{site}/grid - No dataset loaded")
			handlers.RespondConflict(w, msgNoDataset)

		case errors.Is(err, occupancy.ErrSiteNotFound):
			h.logger.Warn("GET /sites/{site}/grid - Site not found: site=%s", site)
			handlers.RespondNotFound(w, msgSiteNotFound)

		default:
			h.logger.Error("GET /sites/{site}/grid - Failed to build grid: site=%s, error=%v", site, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sites/{site}/grid - Grid built: site=%s, week=%d, day=%d, rooms=%d",
		site, week, day, len(grid.Rows))
	handlers.RespondJSON(w, http.StatusOK, grid)
}
