package upload

import "errors"

var (
	// ErrUploadNotFound возвращается, когда загруженный файл не найден
	ErrUploadNotFound = errors.New("upload.repository: upload not found")
)
