package occupancy

import (
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy/models"
)

// Dataset набор данных, собранный из одного источника
// После публикации через Replace не изменяется
type Dataset struct {
	Source   domain.Source
	Store    Store
	Labels   []string // Заголовки сетки; только для источника по умолчанию
	Stats    domain.IngestStats
	LoadedAt time.Time
}

// Service сервис запросов к активному набору данных
// Новый набор подменяет старый целиком, читатели никогда не видят частично собранный индекс
type Service struct {
	mu     sync.RWMutex
	active *Dataset
	logger Logger
}

// NewService создает новый экземпляр сервиса занятости
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Replace публикует новый активный набор данных
func (s *Service) Replace(ds *Dataset) {
	s.mu.Lock()
	previous := s.active
	s.active = ds
	s.mu.Unlock()

	if previous != nil {
		s.logger.Info("Replace: dataset source=%s replaced by source=%s", previous.Source.ID, ds.Source.ID)
		return
	}
	s.logger.Info("Replace: dataset source=%s activated", ds.Source.ID)
}

// ActiveSourceID возвращает ID источника активного набора данных
func (s *Service) ActiveSourceID() (string, bool) {
	ds := s.dataset()
	if ds == nil {
		return "", false
	}
	return ds.Source.ID, true
}

// Info возвращает сводку по активному набору данных
func (s *Service) Info() (*models.DatasetResponse, error) {
	ds := s.dataset()
	if ds == nil {
		return nil, ErrNoDataset
	}

	return &models.DatasetResponse{
		SourceID:   ds.Source.ID,
		SourceName: ds.Source.Name,
		SourceKind: string(ds.Source.Kind),
		Weeks:      models.FromDomainBounds(ds.Store.WeekBounds()),
		Sections:   models.FromDomainBounds(ds.Store.SectionBounds()),
		Sites:      len(ds.Store.Sites()),
		Rooms:      ds.Store.RoomCount(),
		Stats:      models.FromDomainStats(ds.Stats),
		LoadedAt:   ds.LoadedAt,
	}, nil
}

// Sites возвращает площадки в лексикографическом порядке
func (s *Service) Sites() (*models.SiteListResponse, error) {
	ds := s.dataset()
	if ds == nil {
		return nil, ErrNoDataset
	}

	sites := ds.Store.Sites()
	sort.Strings(sites)
	return &models.SiteListResponse{Sites: sites}, nil
}

// Rooms возвращает аудитории площадки в лексикографическом порядке
// Неизвестная площадка дает пустой список
func (s *Service) Rooms(site string) (*models.RoomListResponse, error) {
	ds := s.dataset()
	if ds == nil {
		return nil, ErrNoDataset
	}

	rooms := ds.Store.Rooms(site)
	sort.Strings(rooms)
	return &models.RoomListResponse{Site: site, Rooms: rooms}, nil
}

// Blocks возвращает блоки занятости аудитории; отсутствие данных - пустой список
func (s *Service) Blocks(req *models.BlocksRequest) (*models.BlocksResponse, error) {
	ds := s.dataset()
	if ds == nil {
		return nil, ErrNoDataset
	}

	blocks := ds.Store.Query(req.Site, req.Room, req.Week, req.Weekday)
	return &models.BlocksResponse{
		Site:    req.Site,
		Room:    req.Room,
		Week:    req.Week,
		Weekday: req.Weekday,
		Blocks:  models.FromDomainBlocks(blocks),
	}, nil
}

// Grid строит сетку занятости площадки на указанные неделю и день
func (s *Service) Grid(req *models.GridRequest) (*models.GridResponse, error) {
	ds := s.dataset()
	if ds == nil {
		return nil, ErrNoDataset
	}

	rooms := ds.Store.Rooms(req.Site)
	if len(rooms) == 0 {
		s.logger.Warn("Grid: site=%s not found in source=%s", req.Site, ds.Source.ID)
		return nil, ErrSiteNotFound
	}
	sort.Strings(rooms)

	sections := ds.Store.SectionBounds()
	grid := &models.GridResponse{
		Site:       req.Site,
		Week:       req.Week,
		Weekday:    req.Weekday,
		Labels:     ds.Labels,
		SectionMin: sections.Min,
		SectionMax: sections.Max,
		Rows:       make([]models.GridRow, 0, len(rooms)),
	}

	for _, room := range rooms {
		blocks := ds.Store.Query(req.Site, room, req.Week, req.Weekday)
		grid.Rows = append(grid.Rows, models.GridRow{
			Room:  room,
			Cells: buildCells(blocks, sections),
		})
	}

	return grid, nil
}

func (s *Service) dataset() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}
