package sources

import (
	"context"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	"github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/schedule"
)

// UploadRepository интерфейс репозитория загруженных файлов
type UploadRepository interface {
	Save(ctx context.Context, name string, data []byte) (*domain.Upload, error)
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
	List(ctx context.Context) ([]*domain.Upload, error)
}

// RemoteClient интерфейс клиента удаленного CSV-расписания
type RemoteClient interface {
	URL() string
	Fetch(ctx context.Context) ([]byte, error)
}

// ScheduleRepository интерфейс репозитория расписания в БД
type ScheduleRepository interface {
	ListRecords(ctx context.Context) ([]schedule.Record, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
