package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-ClassroomCheck/internal/usecase/load_source"
)

// Scheduler периодически перезагружает активный источник по cron-расписанию
type Scheduler struct {
	cron    *cron.Cron
	active  ActiveSource
	loader  Loader
	timeout time.Duration
	logger  Logger
}

// NewScheduler создает планировщик и регистрирует задачу обновления
// spec - стандартное cron-выражение из пяти полей (например, "*/15 * * * *")
func NewScheduler(spec string, timeout time.Duration, active ActiveSource, loader Loader, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		active:  active,
		loader:  loader,
		timeout: timeout,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(spec, s.Reload); err != nil {
		return nil, fmt.Errorf("refresh: invalid cron spec %q: %w", spec, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Refresh: scheduler started")
}

// Stop останавливает планировщик и ждет завершения запущенной перезагрузки
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Refresh: scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("Refresh: scheduler stop interrupted: %v", ctx.Err())
	}
}

// Reload перезагружает активный источник
// Если ничего не загружено, обновлять нечего
func (s *Scheduler) Reload() {
	id, ok := s.active.ActiveSourceID()
	if !ok {
		s.logger.Info("Refresh: no active source, skip")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := s.loader.Execute(ctx, &load_source.Request{SourceID: id})
	if err != nil {
		s.logger.Error("Refresh: failed to reload source=%s: %v", id, err)
		return
	}

	s.logger.Info("Refresh: source=%s reloaded, inserted=%d, skipped=%d",
		id, resp.Stats.Inserted, resp.Stats.Skipped)
}
