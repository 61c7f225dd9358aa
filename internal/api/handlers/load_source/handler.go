package load_source

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers"
	loadSource "github.com/m04kA/SMC-ClassroomCheck/internal/usecase/load_source"
)

const (
	msgInvalidSourceID   = "некорректный ID источника"
	msgSourceNotFound    = "источник не найден"
	msgRejected          = "файл расписания отклонен: нет обязательных колонок или файл пуст"
	msgSourceUnavailable = "источник расписания недоступен"
)

type Handler struct {
	useCase LoadSourceUseCase
	logger  Logger
}

func NewHandler(useCase LoadSourceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sources/{sourceId}/load
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем sourceId из URL
	sourceID := mux.Vars(r)["sourceId"]

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &loadSource.Request{SourceID: sourceID})
	// Обработка ошибок
	if err != nil {
		switch {
		case errors.Is(err, loadSource.ErrInvalidInput):
			h.logger.Warn("POST /sources/{id}/load - Invalid source ID: %q", sourceID)
			handlers.RespondBadRequest(w, msgInvalidSourceID)

		case errors.Is(err, loadSource.ErrSourceNotFound):
			h.logger.Warn("POST /sources/{id}/load - Source not found: source_id=%s", sourceID)
			handlers.RespondNotFound(w, msgSourceNotFound)

		case errors.Is(err, loadSource.ErrRejected):
			h.logger.Warn("POST /sources/{id}/load - Schedule rejected: source_id=%s, error=%v", sourceID, err)
			handlers.RespondUnprocessable(w, msgRejected)

		case errors.Is(err, loadSource.ErrSourceUnavailable):
			h.logger.Warn("POST /sources/{id}/load - Source unavailable: source_id=%s, error=%v", sourceID, err)
			handlers.RespondBadGateway(w, msgSourceUnavailable)

		default:
			h.logger.Error("POST /sources/{id}/load - Failed to load source: source_id=%s, error=%v", sourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sources/{id}/load - Source loaded: source_id=%s, inserted=%d, skipped=%d",
		sourceID, result.Stats.Inserted, result.Stats.Skipped)
	// Формируем HTTP ответ
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
