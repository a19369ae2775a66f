package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COMMSDASH_CONFIG", "")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().UI, cfg.UI)
	assert.Equal(t, Default().Events, cfg.Events)
	assert.Equal(t, 500, cfg.EventLog.Capacity)
	assert.False(t, cfg.Prefs.ShowMQTT)
	assert.Empty(t, cfg.Prefs.Initialized)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ReadsTOMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "commsdash.toml")
	content := `
[ui]
project_name = "relay"
page_size = 5

[events]
tick_rate = 8
frame_rate = 60

[prefs]
show_mqtt = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "relay", cfg.UI.ProjectName)
	assert.Equal(t, 5, cfg.UI.PageSize)
	assert.Equal(t, 8.0, cfg.Events.TickRate)
	assert.Equal(t, 60.0, cfg.Events.FrameRate)
	assert.True(t, cfg.Prefs.ShowMQTT)
	assert.Equal(t, Default().UI.DateFormat, cfg.UI.DateFormat)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("COMMSDASH_EVENTS_TICK_RATE", "10")
	t.Setenv("COMMSDASH_UI_PROJECT_NAME", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Events.TickRate)
	assert.Equal(t, "from-env", cfg.UI.ProjectName)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nproject_name = "), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := Load(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	t.Setenv("COMMSDASH_CONFIG", missing)
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero tick rate", func(c *Config) { c.Events.TickRate = 0 }, "events.tick_rate"},
		{"negative frame rate", func(c *Config) { c.Events.FrameRate = -1 }, "events.frame_rate"},
		{"zero page size", func(c *Config) { c.UI.PageSize = 0 }, "ui.page_size"},
		{"zero capacity", func(c *Config) { c.EventLog.Capacity = 0 }, "event_log.capacity"},
		{"blank date format", func(c *Config) { c.UI.DateFormat = "  " }, "ui.date_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIntervals(t *testing.T) {
	e := EventsConfig{TickRate: 4, FrameRate: 50}
	assert.Equal(t, 250*time.Millisecond, e.TickInterval())
	assert.Equal(t, 20*time.Millisecond, e.FrameInterval())
	assert.Equal(t, time.Duration(0), EventsConfig{}.TickInterval())
}
