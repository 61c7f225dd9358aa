package load_source

import "errors"

var (
	// ErrSourceNotFound возвращается, когда источник не найден
	ErrSourceNotFound = errors.New("load_source: source not found")

	// ErrSourceUnavailable возвращается, когда содержимое источника не удалось получить
	ErrSourceUnavailable = errors.New("load_source: source is unavailable")

	// ErrRejected возвращается, когда файл отклонен целиком (пустой или без обязательных колонок)
	ErrRejected = errors.New("load_source: schedule rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_source: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("load_source: internal error")
)
