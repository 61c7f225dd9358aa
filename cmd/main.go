package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getBlocksHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/get_blocks"
	getDatasetHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/get_dataset"
	getGridHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/get_grid"
	getRoomsHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/get_rooms"
	getSitesHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/get_sites"
	listSourcesHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/list_sources"
	loadSourceHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/load_source"
	uploadSourceHandler "github.com/m04kA/SMC-ClassroomCheck/internal/api/handlers/upload_source"
	"github.com/m04kA/SMC-ClassroomCheck/internal/api/middleware"
	"github.com/m04kA/SMC-ClassroomCheck/internal/config"
	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/schedule"
	uploadRepo "github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/upload"
	"github.com/m04kA/SMC-ClassroomCheck/internal/ingest"
	"github.com/m04kA/SMC-ClassroomCheck/internal/integrations/remotecsv"
	"github.com/m04kA/SMC-ClassroomCheck/internal/refresh"
	occupancyService "github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
	sourcesService "github.com/m04kA/SMC-ClassroomCheck/internal/service/sources"
	loadSourceUC "github.com/m04kA/SMC-ClassroomCheck/internal/usecase/load_source"
	"github.com/m04kA/SMC-ClassroomCheck/pkg/logger"
	"github.com/m04kA/SMC-ClassroomCheck/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CLASSROOM_CONFIG"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ClassroomCheck...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник из БД подключается, только если включен
	var scheduleRepository sourcesService.ScheduleRepository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s, table=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.Table)

		scheduleRepository = scheduleRepo.NewRepository(db, cfg.Database.Table, cfg.Database.Term)
	}

	// Удаленный CSV подключается, только если задан URL
	var remoteClient sourcesService.RemoteClient
	if cfg.Remote.URL != "" {
		remoteClient = remotecsv.NewClient(
			cfg.Remote.URL,
			time.Duration(cfg.Remote.Timeout)*time.Second,
			cfg.Remote.MaxBytes(),
			log,
		)
		log.Info("Remote schedule client initialized (url=%s, timeout=%ds)", cfg.Remote.URL, cfg.Remote.Timeout)
	}

	columns := ingest.Columns{
		Count:    cfg.Schedule.Columns.Count,
		Time:     cfg.Schedule.Columns.Time,
		Location: cfg.Schedule.Columns.Location,
		Week:     cfg.Schedule.Columns.Week,
		OddEven:  cfg.Schedule.Columns.OddEven,
	}

	// Инициализируем репозитории и сервисы
	uploadRepository := uploadRepo.NewRepository()
	sourcesSvc := sourcesService.NewService(
		sourcesService.Config{
			DefaultName:    cfg.Schedule.DefaultName,
			DefaultPath:    cfg.Schedule.DefaultPath,
			MaxUploadBytes: cfg.Schedule.MaxUploadBytes(),
			DatabaseHeader: []string{columns.Count, columns.Time, columns.Location, columns.Week, columns.OddEven},
		},
		uploadRepository,
		remoteClient,
		scheduleRepository,
		log,
	)
	occupancySvc := occupancyService.NewService(log)

	ingestor := ingest.NewIngestor(ingest.Options{
		Columns:    columns,
		OddMarker:  cfg.Schedule.OddMarker,
		EvenMarker: cfg.Schedule.EvenMarker,
		MaxWeek:    cfg.Schedule.MaxWeek,
	}, log)

	// Инициализируем use cases
	loadSourceUseCase := loadSourceUC.NewUseCase(
		sourcesSvc,
		ingestor,
		occupancySvc,
		metricsCollector,
		loadSourceUC.DefaultLayout{
			SectionMax: cfg.Schedule.SectionMax,
			Labels:     cfg.Schedule.PeriodLabels,
		},
		log,
	)

	// Загружаем расписание по умолчанию при старте
	if cfg.Schedule.LoadOnStart && cfg.Schedule.DefaultPath != "" {
		loadCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Refresh.Timeout)*time.Second)
		if _, err := loadSourceUseCase.Execute(loadCtx, &loadSourceUC.Request{SourceID: domain.SourceIDDefault}); err != nil {
			log.Error("Failed to load default schedule on start: %v", err)
		}
		cancel()
	}

	// Периодическое обновление активного источника
	var scheduler *refresh.Scheduler
	if cfg.Refresh.Cron != "" {
		scheduler, err = refresh.NewScheduler(
			cfg.Refresh.Cron,
			time.Duration(cfg.Refresh.Timeout)*time.Second,
			occupancySvc,
			loadSourceUseCase,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create refresh scheduler: %v", err)
		}
		scheduler.Start()
		log.Info("Refresh scheduled: cron=%q", cfg.Refresh.Cron)
	}

	// Инициализируем handlers
	listSources := listSourcesHandler.NewHandler(sourcesSvc, log)
	uploadSource := uploadSourceHandler.NewHandler(sourcesSvc, cfg.Schedule.MaxUploadBytes(), log)
	loadSource := loadSourceHandler.NewHandler(loadSourceUseCase, log)
	getDataset := getDatasetHandler.NewHandler(occupancySvc, log)
	getSites := getSitesHandler.NewHandler(occupancySvc, log)
	getRooms := getRoomsHandler.NewHandler(occupancySvc, log)
	getBlocks := getBlocksHandler.NewHandler(occupancySvc, log)
	getGrid := getGridHandler.NewHandler(occupancySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Источники ---
	api.HandleFunc("/sources", listSources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sources", uploadSource.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sources/{sourceId}/load", loadSource.Handle).Methods(http.MethodPost)

	// --- Активный набор данных ---
	api.HandleFunc("/dataset", getDataset.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sites", getSites.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sites/{site}/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sites/{site}/blocks", getBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sites/{site}/grid", getGrid.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
