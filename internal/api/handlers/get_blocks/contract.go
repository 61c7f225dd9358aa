package get_blocks

import "github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy/models"

type OccupancyService interface {
	Blocks(req *models.BlocksRequest) (*models.BlocksResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
