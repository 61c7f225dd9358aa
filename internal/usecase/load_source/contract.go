package load_source

import (
	"context"
	"io"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	occupancyStore "github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/occupancy"
	occupancyService "github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
)

// SourceOpener интерфейс сервиса источников
type SourceOpener interface {
	Open(ctx context.Context, id string) (*domain.SourceContent, error)
}

// Ingestor интерфейс разбора расписания
type Ingestor interface {
	Ingest(r io.Reader, sectionMax int) (*occupancyStore.Store, domain.IngestStats, error)
	IngestRecords(titles []string, records [][]string, sectionMax int) (*occupancyStore.Store, domain.IngestStats, error)
}

// DatasetPublisher интерфейс публикации активного набора данных
type DatasetPublisher interface {
	Replace(ds *occupancyService.Dataset)
}

// Metrics интерфейс метрик загрузки
type Metrics interface {
	ObserveIngest(kind string, inserted, skipped int)
	ObserveRejected(kind string)
	SetDataset(sites, rooms, weekMin, weekMax int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
