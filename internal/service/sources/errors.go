package sources

import "errors"

var (
	// ErrSourceNotFound возвращается, когда источник не найден
	ErrSourceNotFound = errors.New("source not found")

	// ErrUnsupportedType возвращается для файлов, которые не являются CSV
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrEmptyUpload возвращается при загрузке пустого файла
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrUploadTooLarge возвращается, когда файл превышает допустимый размер
	ErrUploadTooLarge = errors.New("uploaded file is too large")

	// ErrSourceUnavailable возвращается, когда внешний источник недоступен
	ErrSourceUnavailable = errors.New("source is unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
