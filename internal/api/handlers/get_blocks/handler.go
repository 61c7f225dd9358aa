package get_blocks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy/models"
)

const (
	msgInvalidWeek = "некорректный номер недели"
	msgInvalidDay  = "некорректный день недели"
	msgNoDataset   = "расписание еще не загружено"
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

// Handle GET /api/v1/sites/{site}/blocks?room=&week=&day=
// Пустой room - место без номера аудитории
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем site из URL
	site := mux.Vars(r)["site"]
	room := r.URL.Query().Get("room")

	// Читаем параметры запроса
	week, err := handlers.RequireQueryInt(r, "week")
	if err != nil {
		h.logger.Warn("GET /sites/{site}/blocks - Invalid week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	day, err := handlers.RequireQueryInt(r, "day")
	if err != nil {
		h.logger.Warn("GET /sites/{site}/blocks - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	// Получаем занятые блоки из сервиса
	blocks, err := h.service.Blocks(&models.BlocksRequest{
		Site:    site,
		Room:    room,
		Week:    week,
		Weekday: day,
	})
	// Обработка ошибок
	if err != nil {
		if errors.Is(err, occupancy.ErrNoDataset) {
			h.logger.Warn("GET /sites/{site}/blocks - No dataset loaded")
			handlers.RespondConflict(w, msgNoDataset)
			return
		}
		h.logger.Error("GET /sites/{site}/blocks - Failed to get blocks: site=%s, room=%s, error=%v", site, room, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sites/{site}/blocks - Blocks retrieved: site=%s, room=%s, week=%d, day=%d, count=%d",
		site, room, week, day, len(blocks.Blocks))
	handlers.RespondJSON(w, http.StatusOK, blocks)
}
