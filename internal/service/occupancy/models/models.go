package models

import (
	"time"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

// Request модели

// BlocksRequest запрос блоков занятости одной аудитории
type BlocksRequest struct {
	Site    string
	Room    string // Может быть пустой: место без номера аудитории
	Week    int
	Weekday int
}

// GridRequest запрос сетки занятости площадки
type GridRequest struct {
	Site    string
	Week    int
	Weekday int
}

// Response модели

// BoundsResponse диапазон номеров
type BoundsResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// StatsResponse статистика разбора источника
type StatsResponse struct {
	Lines    int `json:"lines"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// DatasetResponse активный набор данных
type DatasetResponse struct {
	SourceID   string         `json:"sourceId"`
	SourceName string         `json:"sourceName"`
	SourceKind string         `json:"sourceKind"`
	Weeks      BoundsResponse `json:"weeks"`
	Sections   BoundsResponse `json:"sections"`
	Sites      int            `json:"sites"`
	Rooms      int            `json:"rooms"`
	Stats      StatsResponse  `json:"stats"`
	LoadedAt   time.Time      `json:"loadedAt"`
}

// SiteListResponse отсортированный список площадок
type SiteListResponse struct {
	Sites []string `json:"sites"`
}

// RoomListResponse отсортированный список аудиторий площадки
type RoomListResponse struct {
	Site  string   `json:"site"`
	Rooms []string `json:"rooms"`
}

// BlockResponse блок занятости
type BlockResponse struct {
	Count  int `json:"count"`
	First  int `json:"first"`
	Length int `json:"length"`
}

// BlocksResponse блоки занятости аудитории на день
type BlocksResponse struct {
	Site    string          `json:"site"`
	Room    string          `json:"room"`
	Week    int             `json:"week"`
	Weekday int             `json:"weekday"`
	Blocks  []BlockResponse `json:"blocks"`
}

// GridCell ячейка сетки
// Свободная ячейка всегда занимает одну пару; занятая растягивается на пары своего блока
type GridCell struct {
	Period   int  `json:"period"`
	Span     int  `json:"span"`
	Occupied bool `json:"occupied"`
	Count    int  `json:"count,omitempty"`
}

// GridRow строка сетки (одна аудитория)
type GridRow struct {
	Room  string     `json:"room"`
	Cells []GridCell `json:"cells"`
}

// GridResponse сетка занятости площадки на день
type GridResponse struct {
	Site       string    `json:"site"`
	Week       int       `json:"week"`
	Weekday    int       `json:"weekday"`
	Labels     []string  `json:"labels,omitempty"`
	SectionMin int       `json:"sectionMin"`
	SectionMax int       `json:"sectionMax"`
	Rows       []GridRow `json:"rows"`
}

// Методы конвертации

// FromDomainBounds конвертирует диапазон в DTO
func FromDomainBounds(b domain.Bounds) BoundsResponse {
	return BoundsResponse{Min: b.Min, Max: b.Max}
}

// FromDomainStats конвертирует статистику разбора в DTO
func FromDomainStats(s domain.IngestStats) StatsResponse {
	return StatsResponse{Lines: s.Lines, Inserted: s.Inserted, Skipped: s.Skipped}
}

// FromDomainBlocks конвертирует блоки в DTO
func FromDomainBlocks(blocks []domain.Block) []BlockResponse {
	result := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		result[i] = BlockResponse{Count: b.Count, First: b.First, Length: b.Length}
	}
	return result
}
