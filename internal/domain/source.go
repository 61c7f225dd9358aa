package domain

import "time"

// SourceKind тип источника расписания
type SourceKind string

const (
	SourceDefault  SourceKind = "default"
	SourceUpload   SourceKind = "upload"
	SourceRemote   SourceKind = "remote"
	SourceDatabase SourceKind = "database"
)

// Source источник расписания, из которого можно собрать набор данных
type Source struct {
	ID   string
	Name string
	Kind SourceKind
}

// IsDefault returns true for the bundled default schedule.
// Default schedules always render the full day grid (see DefaultSectionMax)
func (s Source) IsDefault() bool {
	return s.Kind == SourceDefault
}

// Upload CSV-файл, загруженный пользователем
type Upload struct {
	ID         string
	Name       string
	Data       []byte
	UploadedAt time.Time
}

// SourceContent содержимое источника
// Текстовые источники заполняют Data, табличные (база данных) - Header и Records
type SourceContent struct {
	Source  Source
	Data    []byte
	Header  []string
	Records [][]string
}

// IsTabular returns true if the content is already split into fields
func (c *SourceContent) IsTabular() bool {
	return c.Header != nil
}

// IngestStats статистика разбора одного источника.
// Счетчики носят диагностический характер: Skipped не означает, что источник не прошел проверку
type IngestStats struct {
	Lines    int // Непустые строки данных
	Inserted int // Строки, добавленные в хранилище
	Skipped  int // Строки, пропущенные при разборе
}

// Фиксированные идентификаторы источников; загрузки идентифицируются UUID
const (
	SourceIDDefault  = "default"
	SourceIDRemote   = "remote"
	SourceIDDatabase = "database"
)
