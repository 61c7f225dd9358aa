package refresh

import (
	"context"

	"github.com/m04kA/SMC-ClassroomCheck/internal/usecase/load_source"
)

// ActiveSource интерфейс получения ID активного источника
type ActiveSource interface {
	ActiveSourceID() (string, bool)
}

// Loader интерфейс загрузки источника
type Loader interface {
	Execute(ctx context.Context, req *load_source.Request) (*load_source.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
