package remotecsv

import "errors"

var (
	// ErrNotFound возвращается, когда файл расписания не найден по URL
	ErrNotFound = errors.New("remotecsv client: schedule not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("remotecsv client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервера
	ErrInvalidResponse = errors.New("remotecsv client: invalid response")

	// ErrTooLarge возвращается, когда ответ превышает допустимый размер
	ErrTooLarge = errors.New("remotecsv client: response too large")
)
