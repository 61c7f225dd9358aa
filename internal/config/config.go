package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Database DatabaseConfig `toml:"database"`
	Remote   RemoteConfig   `toml:"remote"`
	Refresh  RefreshConfig  `toml:"refresh"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"startswith=/"`
	ServiceName string `toml:"service_name" validate:"required"`
}

// ColumnsConfig ключевые слова заголовков колонок
type ColumnsConfig struct {
	Count    string `toml:"count" validate:"required"`
	Time     string `toml:"time" validate:"required"`
	Location string `toml:"location" validate:"required"`
	Week     string `toml:"week" validate:"required"`
	OddEven  string `toml:"odd_even" validate:"required"`
}

// ScheduleConfig настройки расписания и загрузок
type ScheduleConfig struct {
	DefaultPath  string        `toml:"default_path"`
	DefaultName  string        `toml:"default_name" validate:"required_with=DefaultPath"`
	LoadOnStart  bool          `toml:"load_on_start"`
	SectionMax   int           `toml:"section_max" validate:"min=1"`
	PeriodLabels []string      `toml:"period_labels"`
	MaxUploadMB  int           `toml:"max_upload_mb" validate:"min=1"`
	Columns      ColumnsConfig `toml:"columns"`
	OddMarker    string        `toml:"odd_marker" validate:"required"`
	EvenMarker   string        `toml:"even_marker" validate:"required"`
	MaxWeek      int           `toml:"max_week" validate:"min=1"`
}

// MaxUploadBytes возвращает лимит размера загружаемого файла в байтах
func (c ScheduleConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// DatabaseConfig настройки подключения к PostgreSQL с таблицей расписания
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host" validate:"required_if=Enabled true"`
	Port            int    `toml:"port" validate:"min=0,max=65535"`
	User            string `toml:"user" validate:"required_if=Enabled true"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required_if=Enabled true"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	Table           string `toml:"table" validate:"required_if=Enabled true"`
	Term            string `toml:"term"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RemoteConfig настройки удаленного CSV-расписания
type RemoteConfig struct {
	URL     string `toml:"url" validate:"omitempty,url"`
	Timeout int    `toml:"timeout" validate:"min=1"`
	MaxMB   int    `toml:"max_mb" validate:"min=1"`
}

// MaxBytes возвращает лимит размера ответа в байтах
func (c RemoteConfig) MaxBytes() int64 {
	return int64(c.MaxMB) << 20
}

// RefreshConfig настройки периодической перезагрузки активного источника
type RefreshConfig struct {
	Cron    string `toml:"cron"`
	Timeout int    `toml:"timeout" validate:"min=1"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "classroom_check",
		},
		Schedule: ScheduleConfig{
			SectionMax:   domain.DefaultSectionMax,
			PeriodLabels: append([]string(nil), domain.DefaultPeriodLabels...),
			MaxUploadMB:  10,
			Columns: ColumnsConfig{
				Count:    domain.ColumnCount,
				Time:     domain.ColumnTime,
				Location: domain.ColumnLocation,
				Week:     domain.ColumnWeek,
				OddEven:  domain.ColumnOddEven,
			},
			OddMarker:  domain.MarkerOdd,
			EvenMarker: domain.MarkerEven,
			MaxWeek:    domain.DefaultMaxWeek,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Remote: RemoteConfig{
			Timeout: 10,
			MaxMB:   10,
		},
		Refresh: RefreshConfig{
			Timeout: 30,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию -> TOML файл -> переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// applyEnv переопределяет секреты и адреса из переменных окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("CLASSROOM_DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("CLASSROOM_DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("CLASSROOM_REMOTE_URL"); v != "" {
		c.Remote.URL = v
	}
	if v := os.Getenv("CLASSROOM_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CLASSROOM_HTTP_PORT=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}
