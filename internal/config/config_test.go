package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[schedule]
default_path = "resources/default.csv"
default_name = "默认课表"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, domain.ColumnCount, cfg.Schedule.Columns.Count)
	assert.Equal(t, domain.MarkerOdd, cfg.Schedule.OddMarker)
	assert.Equal(t, domain.DefaultPeriodLabels, cfg.Schedule.PeriodLabels)
	assert.Equal(t, domain.DefaultSectionMax, cfg.Schedule.SectionMax)
	assert.Equal(t, domain.DefaultMaxWeek, cfg.Schedule.MaxWeek)
	assert.Equal(t, int64(10<<20), cfg.Schedule.MaxUploadBytes())
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_OverridesDoNotLeakIntoDefaults(t *testing.T) {
	path := writeConfig(t, `
[schedule]
period_labels = ["房间", "第一节"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"房间", "第一节"}, cfg.Schedule.PeriodLabels)
	assert.Equal(t, "教室", domain.DefaultPeriodLabels[0])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLASSROOM_DB_PASSWORD", "secret")
	t.Setenv("CLASSROOM_HTTP_PORT", "8181")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv("CLASSROOM_HTTP_PORT", "http")

	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "log level", content: "[logs]\nlevel = \"verbose\"\n"},
		{name: "port", content: "[server]\nhttp_port = 70000\n"},
		{name: "database without host", content: "[database]\nenabled = true\nuser = \"u\"\ndbname = \"d\"\ntable = \"t\"\n"},
		{name: "remote url", content: "[remote]\nurl = \"not a url\"\n"},
		{name: "default without name", content: "[schedule]\ndefault_path = \"a.csv\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "campus", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=campus sslmode=disable", c.DSN())
}
