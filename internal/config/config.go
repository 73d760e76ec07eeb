// Package config loads themedeck configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides (THEMEDECK_THEME_PALETTE, ...).
const EnvPrefix = "THEMEDECK"

// Config is the full application configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`
	Journal JournalConfig `mapstructure:"journal"`
	Daemon  DaemonConfig  `mapstructure:"daemon"`
	TUI     TUIConfig     `mapstructure:"tui"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// ThemeConfig selects the initial palette and style.
type ThemeConfig struct {
	Palette string `mapstructure:"palette"`
	Style   string `mapstructure:"style"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// JournalConfig controls the selection journal database.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// DaemonConfig configures the gRPC theme service.
type DaemonConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// TUIConfig configures the terminal preview.
type TUIConfig struct {
	Gallery   bool `mapstructure:"gallery"`
	SidePanel bool `mapstructure:"side_panel"`
}

// Default daemon port.
const DefaultPort = 50581

// configDirFunc is swapped in tests.
var configDirFunc = defaultConfigDir

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "themedeck")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "themedeck")
	}
	return "."
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "themedeck")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "themedeck")
	}
	return "."
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	return configDirFunc()
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("theme.palette", "calm-professional")
	v.SetDefault("theme.style", "clean-card")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(defaultDataDir(), "journal.db"))
	v.SetDefault("daemon.host", "127.0.0.1")
	v.SetDefault("daemon.port", DefaultPort)
	v.SetDefault("tui.gallery", false)
	v.SetDefault("tui.side_panel", true)
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration. An explicit path must exist; otherwise config.yaml
// in ConfigDir is used when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural settings. Theme ids are not checked here: unknown
// ids fall back to the default theme when the store is created.
func (c *Config) Validate() error {
	if c.Daemon.Port < 0 || c.Daemon.Port > 65535 {
		return fmt.Errorf("daemon.port %d out of range", c.Daemon.Port)
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("journal.path is required when journal.enabled is true")
	}
	return nil
}

// ExampleFile is written by `themedeck config init`.
const ExampleFile = `# themedeck configuration file

theme:
  palette: calm-professional   # calm-professional | modern-wellness | warm-earth
  style: clean-card            # clean-card | soft-neumorphic | minimalist-clinical

logging:
  level: info                  # trace | debug | info | warn | error
  format: console              # console | json
  file: ""                     # log file path; the TUI discards logs when empty

journal:
  enabled: false               # record theme changes to a local SQLite audit log
  # path: /path/to/journal.db  # defaults to $XDG_DATA_HOME/themedeck/journal.db

daemon:
  host: 127.0.0.1
  port: 50581

tui:
  gallery: false               # start in gallery view
  side_panel: true             # show the palette/style side panel
`

// WriteExample writes ExampleFile into ConfigDir unless one exists and force is false.
func WriteExample(force bool) (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(ExampleFile), 0o644); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
