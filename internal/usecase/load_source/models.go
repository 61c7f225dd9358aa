package load_source

import (
	"time"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

// DefaultLayout раскладка сетки для источника по умолчанию
type DefaultLayout struct {
	SectionMax int      // Правая граница пар до загрузки данных
	Labels     []string // Заголовки сетки: аудитория, затем время начала пар
}

// Request модель запроса на загрузку источника
type Request struct {
	SourceID string // ID источника ("default", "remote", "database" или UUID загрузки)
}

// Response модель ответа с результатом загрузки
type Response struct {
	Source   domain.Source
	Stats    domain.IngestStats
	Weeks    domain.Bounds
	Sections domain.Bounds
	Sites    int
	Rooms    int
	LoadedAt time.Time
}
