package sources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	uploadRepo "github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/upload"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/sources/models"
)

const csvExt = ".csv"

// Config настройки каталога источников
type Config struct {
	DefaultName    string   // Отображаемое имя источника по умолчанию
	DefaultPath    string   // Путь к CSV по умолчанию; пустой - источник отключен
	MaxUploadBytes int64    // Максимальный размер загружаемого файла
	DatabaseHeader []string // Заголовки колонок для строк из БД (count, time, location, week, odd_even)
}

// Service каталог источников расписания
// remote и schedule могут быть nil, если соответствующий источник не настроен
type Service struct {
	cfg      Config
	uploads  UploadRepository
	remote   RemoteClient
	schedule ScheduleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса источников
func NewService(
	cfg Config,
	uploads UploadRepository,
	remote RemoteClient,
	schedule ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		cfg:      cfg,
		uploads:  uploads,
		remote:   remote,
		schedule: schedule,
		logger:   logger,
	}
}

// List возвращает все доступные источники: встроенные, затем загрузки
func (s *Service) List(ctx context.Context) (*models.SourceListResponse, error) {
	result := make([]models.SourceResponse, 0)
	for _, source := range s.builtin() {
		result = append(result, models.FromDomainSource(source))
	}

	uploads, err := s.uploads.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list uploads: %v", err)
		return nil, fmt.Errorf("%w: List - upload repository error: %v", ErrInternal, err)
	}
	for _, upload := range uploads {
		result = append(result, models.FromDomainUpload(upload))
	}

	return &models.SourceListResponse{Sources: result}, nil
}

// Upload сохраняет загруженный CSV-файл как новый источник
func (s *Service) Upload(ctx context.Context, name string, data []byte) (*models.SourceResponse, error) {
	name = filepath.Base(strings.TrimSpace(name))
	s.logger.Info("Upload: name=%s, bytes=%d", name, len(data))

	if !strings.EqualFold(filepath.Ext(name), csvExt) {
		s.logger.Warn("Upload: unsupported file type name=%s", name)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	if s.cfg.MaxUploadBytes > 0 && int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, s.cfg.MaxUploadBytes)
	}

	upload, err := s.uploads.Save(ctx, name, data)
	if err != nil {
		s.logger.Error("Upload: failed to save name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: saved name=%s as id=%s", name, upload.ID)
	response := models.FromDomainUpload(upload)
	return &response, nil
}

// Open загружает содержимое источника по ID
func (s *Service) Open(ctx context.Context, id string) (*domain.SourceContent, error) {
	for _, source := range s.builtin() {
		if source.ID == id {
			return s.openBuiltin(ctx, source)
		}
	}

	upload, err := s.uploads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, uploadRepo.ErrUploadNotFound) {
			s.logger.Warn("Open: source id=%s not found", id)
			return nil, ErrSourceNotFound
		}
		s.logger.Error("Open: failed to get upload id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Open - upload repository error: %v", ErrInternal, err)
	}

	return &domain.SourceContent{
		Source: domain.Source{ID: upload.ID, Name: upload.Name, Kind: domain.SourceUpload},
		Data:   upload.Data,
	}, nil
}

// builtin возвращает настроенные встроенные источники
func (s *Service) builtin() []domain.Source {
	sources := make([]domain.Source, 0, 3)
	if s.cfg.DefaultPath != "" {
		sources = append(sources, domain.Source{
			ID:   domain.SourceIDDefault,
			Name: s.cfg.DefaultName,
			Kind: domain.SourceDefault,
		})
	}
	if s.remote != nil {
		sources = append(sources, domain.Source{
			ID:   domain.SourceIDRemote,
			Name: s.remote.URL(),
			Kind: domain.SourceRemote,
		})
	}
	if s.schedule != nil {
		sources = append(sources, domain.Source{
			ID:   domain.SourceIDDatabase,
			Name: domain.SourceIDDatabase,
			Kind: domain.SourceDatabase,
		})
	}
	return sources
}

func (s *Service) openBuiltin(ctx context.Context, source domain.Source) (*domain.SourceContent, error) {
	switch source.Kind {
	case domain.SourceDefault:
		data, err := os.ReadFile(s.cfg.DefaultPath)
		if err != nil {
			s.logger.Error("Open: failed to read default schedule %s: %v", s.cfg.DefaultPath, err)
			return nil, fmt.Errorf("%w: default schedule: %v", ErrSourceUnavailable, err)
		}
		return &domain.SourceContent{Source: source, Data: data}, nil

	case domain.SourceRemote:
		data, err := s.remote.Fetch(ctx)
		if err != nil {
			s.logger.Error("Open: failed to fetch remote schedule: %v", err)
			return nil, fmt.Errorf("%w: remote schedule: %v", ErrSourceUnavailable, err)
		}
		return &domain.SourceContent{Source: source, Data: data}, nil

	case domain.SourceDatabase:
		records, err := s.schedule.ListRecords(ctx)
		if err != nil {
			s.logger.Error("Open: failed to read schedule table: %v", err)
			return nil, fmt.Errorf("%w: database schedule: %v", ErrSourceUnavailable, err)
		}

		rows := make([][]string, len(records))
		for i, record := range records {
			rows[i] = record.Fields()
		}
		return &domain.SourceContent{
			Source:  source,
			Header:  s.cfg.DatabaseHeader,
			Records: rows,
		}, nil

	default:
		return nil, ErrSourceNotFound
	}
}
