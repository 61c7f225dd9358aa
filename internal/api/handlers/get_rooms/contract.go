package get_rooms

import "github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy/models"

type OccupancyService interface {
	Rooms(site string) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
