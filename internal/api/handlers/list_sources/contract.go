package list_sources

import (
	"context"

	"github.com/m04kA/SMC-ClassroomCheck/internal/service/sources/models"
)

type SourceService interface {
	List(ctx context.Context) (*models.SourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
