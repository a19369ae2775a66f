package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Events   EventsConfig
	EventLog EventLogConfig `mapstructure:"event_log"`
	Prefs    Preferences
	Log      LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ProjectName string `mapstructure:"project_name"`
	DateFormat  string `mapstructure:"date_format"`
	PageSize    int    `mapstructure:"page_size"`
}

// EventsConfig holds the event source cadence, in events per second.
type EventsConfig struct {
	TickRate  float64 `mapstructure:"tick_rate"`
	FrameRate float64 `mapstructure:"frame_rate"`
}

// EventLogConfig bounds the in-memory log shown in the event log region.
type EventLogConfig struct {
	Capacity int
}

// LogConfig holds logging sinks besides the event log.
type LogConfig struct {
	File string
}

// Preferences are read once at start-up and never mutated by the runtime.
type Preferences struct {
	// Initialized is non-empty once start-up has produced a real preferences
	// value rather than a zero one.
	Initialized string
	ShowMQTT    bool `mapstructure:"show_mqtt"`
}

// TickInterval converts TickRate to a period.
func (e EventsConfig) TickInterval() time.Duration {
	return rateToInterval(e.TickRate)
}

// FrameInterval converts FrameRate to a period.
func (e EventsConfig) FrameInterval() time.Duration {
	return rateToInterval(e.FrameRate)
}

func rateToInterval(rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / rate)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			ProjectName: "commsdash",
			DateFormat:  "2006-01-02 15:04:05",
			PageSize:    10,
		},
		Events: EventsConfig{
			TickRate:  4,
			FrameRate: 30,
		},
		EventLog: EventLogConfig{Capacity: 500},
	}
}

// Validate rejects values the runtime cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Events.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("events.tick_rate must be positive, got %v", c.Events.TickRate))
	}
	if c.Events.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("events.frame_rate must be positive, got %v", c.Events.FrameRate))
	}
	if c.UI.PageSize < 1 {
		errs = append(errs, fmt.Errorf("ui.page_size must be at least 1, got %d", c.UI.PageSize))
	}
	if c.EventLog.Capacity < 1 {
		errs = append(errs, fmt.Errorf("event_log.capacity must be at least 1, got %d", c.EventLog.Capacity))
	}
	if strings.TrimSpace(c.UI.DateFormat) == "" {
		errs = append(errs, errors.New("ui.date_format must not be empty"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from file and env. Env var overrides use prefix COMMSDASH_.
// path selects the config file; when empty, $COMMSDASH_CONFIG and then
// ~/.config/commsdash/config.toml are tried. Only a missing default file is tolerated.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.project_name", def.UI.ProjectName)
	v.SetDefault("ui.date_format", def.UI.DateFormat)
	v.SetDefault("ui.page_size", def.UI.PageSize)
	v.SetDefault("events.tick_rate", def.Events.TickRate)
	v.SetDefault("events.frame_rate", def.Events.FrameRate)
	v.SetDefault("event_log.capacity", def.EventLog.Capacity)
	v.SetDefault("prefs.show_mqtt", false)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("COMMSDASH_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "commsdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COMMSDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
