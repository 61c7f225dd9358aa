package ingest

import "errors"

var (
	// ErrEmptyFile возвращается, когда в источнике нет даже строки заголовка
	ErrEmptyFile = errors.New("ingest: empty schedule file")

	// ErrMissingColumns возвращается, когда в заголовке нет обязательных колонок
	ErrMissingColumns = errors.New("ingest: missing required columns")

	// ErrDecode возвращается, когда текст не удалось перекодировать в UTF-8
	ErrDecode = errors.New("ingest: failed to decode text")
)
