package load_source

import (
	"time"

	loadSource "github.com/m04kA/SMC-ClassroomCheck/internal/usecase/load_source"
)

// BoundsResponse HTTP модель диапазона
type BoundsResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// StatsResponse HTTP модель статистики разбора
type StatsResponse struct {
	Lines    int `json:"lines"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// LoadResponse HTTP модель результата загрузки
type LoadResponse struct {
	SourceID   string         `json:"sourceId"`
	SourceName string         `json:"sourceName"`
	SourceKind string         `json:"sourceKind"`
	Stats      StatsResponse  `json:"stats"`
	Weeks      BoundsResponse `json:"weeks"`
	Sections   BoundsResponse `json:"sections"`
	Sites      int            `json:"sites"`
	Rooms      int            `json:"rooms"`
	LoadedAt   string         `json:"loadedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *loadSource.Response) LoadResponse {
	return LoadResponse{
		SourceID:   resp.Source.ID,
		SourceName: resp.Source.Name,
		SourceKind: string(resp.Source.Kind),
		Stats: StatsResponse{
			Lines:    resp.Stats.Lines,
			Inserted: resp.Stats.Inserted,
			Skipped:  resp.Stats.Skipped,
		},
		Weeks:    BoundsResponse{Min: resp.Weeks.Min, Max: resp.Weeks.Max},
		Sections: BoundsResponse{Min: resp.Sections.Min, Max: resp.Sections.Max},
		Sites:    resp.Sites,
		Rooms:    resp.Rooms,
		LoadedAt: resp.LoadedAt.Format(time.RFC3339),
	}
}
