package load_source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	"github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/occupancy"
	"github.com/m04kA/SMC-ClassroomCheck/internal/ingest"
	occupancyService "github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/sources"
)

// UseCase use case загрузки источника в активный набор данных
type UseCase struct {
	sources   SourceOpener
	ingestor  Ingestor
	publisher DatasetPublisher
	metrics   Metrics
	layout    DefaultLayout
	now       func() time.Time
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sources SourceOpener,
	ingestor Ingestor,
	publisher DatasetPublisher,
	metrics Metrics,
	layout DefaultLayout,
	logger Logger,
) *UseCase {
	return &UseCase{
		sources:   sources,
		ingestor:  ingestor,
		publisher: publisher,
		metrics:   metrics,
		layout:    layout,
		now:       time.Now,
		logger:    logger,
	}
}

// Execute собирает новое хранилище из источника и подменяет им активный набор данных
// При любой ошибке активный набор данных не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LoadSource: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("LoadSource: source=%s", req.SourceID)

	content, err := uc.sources.Open(ctx, req.SourceID)
	if err != nil {
		switch {
		case errors.Is(err, sources.ErrSourceNotFound):
			uc.logger.Warn("LoadSource: source=%s not found", req.SourceID)
			return nil, ErrSourceNotFound
		case errors.Is(err, sources.ErrSourceUnavailable):
			uc.logger.Warn("LoadSource: source=%s unavailable: %v", req.SourceID, err)
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		default:
			uc.logger.Error("LoadSource: failed to open source=%s: %v", req.SourceID, err)
			return nil, fmt.Errorf("%w: failed to open source: %v", ErrInternal, err)
		}
	}

	kind := string(content.Source.Kind)
	sectionMax := 0
	var labels []string
	if content.Source.IsDefault() {
		sectionMax = uc.layout.SectionMax
		labels = uc.layout.Labels
	}

	store, stats, err := uc.ingest(content, sectionMax)
	if err != nil {
		uc.metrics.ObserveRejected(kind)
		if errors.Is(err, ingest.ErrEmptyFile) || errors.Is(err, ingest.ErrMissingColumns) || errors.Is(err, ingest.ErrDecode) {
			uc.logger.Warn("LoadSource: source=%s rejected: %v", req.SourceID, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		uc.logger.Error("LoadSource: failed to ingest source=%s: %v", req.SourceID, err)
		return nil, fmt.Errorf("%w: failed to ingest source: %v", ErrInternal, err)
	}

	loadedAt := uc.now()
	uc.publisher.Replace(&occupancyService.Dataset{
		Source:   content.Source,
		Store:    store,
		Labels:   labels,
		Stats:    stats,
		LoadedAt: loadedAt,
	})

	weeks := store.WeekBounds()
	response := &Response{
		Source:   content.Source,
		Stats:    stats,
		Weeks:    weeks,
		Sections: store.SectionBounds(),
		Sites:    len(store.Sites()),
		Rooms:    store.RoomCount(),
		LoadedAt: loadedAt,
	}

	uc.metrics.ObserveIngest(kind, stats.Inserted, stats.Skipped)
	uc.metrics.SetDataset(response.Sites, response.Rooms, weeks.Min, weeks.Max)

	uc.logger.Info("LoadSource: source=%s loaded, inserted=%d, skipped=%d, weeks=%d-%d",
		req.SourceID, stats.Inserted, stats.Skipped, weeks.Min, weeks.Max)

	return response, nil
}

func (uc *UseCase) ingest(content *domain.SourceContent, sectionMax int) (*occupancy.Store, domain.IngestStats, error) {
	if content.IsTabular() {
		return uc.ingestor.IngestRecords(content.Header, content.Records, sectionMax)
	}
	return uc.ingestor.Ingest(bytes.NewReader(content.Data), sectionMax)
}
