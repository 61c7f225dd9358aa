package load_source

import (
	"context"

	loadSource "github.com/m04kA/SMC-ClassroomCheck/internal/usecase/load_source"
)

type LoadSourceUseCase interface {
	Execute(ctx context.Context, req *loadSource.Request) (*loadSource.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
