package upload_source

import (
	"context"

	"github.com/m04kA/SMC-ClassroomCheck/internal/service/sources/models"
)

type SourceService interface {
	Upload(ctx context.Context, name string, data []byte) (*models.SourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
