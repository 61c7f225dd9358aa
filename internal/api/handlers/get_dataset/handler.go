package get_dataset

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

// Handle GET /api/v1/dataset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем сведения об активном наборе данных
	info, err := h.service.Info()
	if err != nil {
		if errors.Is(err, occupancy.ErrNoDataset) {
			h.logger.Warn("GET /dataset - No dataset loaded")
			handlers.RespondConflict(w, msgNoDataset)
			return
		}
		h.logger.Error("GET /dataset - Failed to get dataset: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dataset - Dataset info: source_id=%s", info.SourceID)
	handlers.RespondJSON(w, http.StatusOK, info)
}
