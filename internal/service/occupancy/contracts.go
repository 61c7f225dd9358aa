package occupancy

import "github.com/m04kA/SMC-ClassroomCheck/internal/domain"

// Store интерфейс индекса занятости, собранного из одного источника
type Store interface {
	Query(site, room string, week, weekday int) []domain.Block
	Sites() []string
	Rooms(site string) []string
	RoomCount() int
	WeekBounds() domain.Bounds
	SectionBounds() domain.Bounds
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
