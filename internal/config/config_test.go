package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hero-quest/internal/config"
	"hero-quest/internal/gametime"
)

func clearEnv(t *testing.T) {
	t.Setenv("HEROQUEST_START", "")
	t.Setenv("HEROQUEST_LOG_LEVEL", "")
	t.Setenv("HEROQUEST_LOG_FORMAT", "")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()

	cfg, err := config.Load(fsys, "/etc/heroquest.yaml")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, gametime.GameStart, cfg.Start)
	assert.Equal(t, "world", cfg.DefaultClock)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_ReadsYAML(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte(`
start: "1300-07-04 06:30"
default_clock: realm
log_level: debug
log_format: JSON
`), 0o644))

	cfg, err := config.Load(fsys, "/cfg.yaml")
	require.NoError(t, err)

	assert.Equal(t, time.Date(1300, 7, 4, 6, 30, 0, 0, time.UTC), cfg.Start)
	assert.Equal(t, "realm", cfg.DefaultClock)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, config.FormatJSON, cfg.LogFormat)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte("log_level: debug\n"), 0o644))
	t.Setenv("HEROQUEST_LOG_LEVEL", "warn")
	t.Setenv("HEROQUEST_START", "2000-01-01T00:00:00Z")

	cfg, err := config.Load(fsys, "/cfg.yaml")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Start)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad start", content: "start: yesterday\n"},
		{name: "bad level", content: "log_level: loud\n"},
		{name: "bad format", content: "log_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte(tt.content), 0o644))

			_, err := config.Load(fsys, "/cfg.yaml")

			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte("start: [unclosed\n"), 0o644))

	_, err := config.Load(fsys, "/cfg.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "1234-03-12T04:53:00Z", want: gametime.GameStart},
		{in: "2000-01-01 12:30", want: time.Date(2000, 1, 1, 12, 30, 0, 0, time.UTC)},
		{in: "2000-01-01", want: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.ParseTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := config.ParseTime("noon")
	assert.Error(t, err)
}
