package upload_source

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/sources"
)

const (
	formField = "file"

	// multipartOverhead запас на заголовки multipart сверх размера самого файла
	multipartOverhead = 1 << 20
)

const (
	msgInvalidForm     = "ожидается multipart/form-data с полем file"
	msgUnsupportedType = "поддерживаются только файлы .csv"
	msgEmptyFile       = "файл пуст"
	msgTooLarge        = "файл слишком большой"
)

type Handler struct {
	service  SourceService
	maxBytes int64
	logger   Logger
}

func NewHandler(service SourceService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/v1/sources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Ограничиваем размер тела запроса
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	// Читаем файл из формы
	file, header, err := r.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /sources - Request too large: limit=%d", tooLarge.Limit)
			handlers.RespondTooLarge(w, msgTooLarge)
			return
		}
		h.logger.Warn("POST /sources - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		h.logger.Warn("POST /sources - Failed to read file: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	// Сохраняем загрузку через сервис
	source, err := h.service.Upload(r.Context(), header.Filename, data)
	// Обработка ошибок
	if err != nil {
		switch {
		case errors.Is(err, sources.ErrUnsupportedType):
			h.logger.Warn("POST /sources - Unsupported file type: name=%s", header.Filename)
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedType)

		case errors.Is(err, sources.ErrEmptyUpload):
			h.logger.Warn("POST /sources - Empty file: name=%s", header.Filename)
			handlers.RespondBadRequest(w, msgEmptyFile)

		case errors.Is(err, sources.ErrUploadTooLarge):
			h.logger.Warn("POST /sources - File too large: name=%s", header.Filename)
			handlers.RespondTooLarge(w, msgTooLarge)

		default:
			h.logger.Error("POST /sources - Failed to upload: name=%s, error=%v", header.Filename, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sources - Source uploaded: id=%s, name=%s", source.ID, source.Name)
	handlers.RespondJSON(w, http.StatusCreated, source)
}
