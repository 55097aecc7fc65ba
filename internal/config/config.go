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
	Log   LogConfig   `mapstructure:"log"`
	UI    UIConfig    `mapstructure:"ui"`
	Paths PathsConfig `mapstructure:"paths"`
}

// LogConfig controls the debug logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// InvalidPause is how long "Invalid choice." stays on screen.
	InvalidPause time.Duration `mapstructure:"invalid_pause"`

	// ClearScreen redraws the menu on a clean screen when stdout is a terminal.
	ClearScreen bool `mapstructure:"clear_screen"`
}

// PathsConfig overrides filesystem locations used by the tools.
type PathsConfig struct {
	// HelldiversDir replaces %APPDATA%\Arrowhead\Helldivers2.
	HelldiversDir string `mapstructure:"helldivers_dir"`

	// ExtraTempDirs are cleaned along with the standard temp directories.
	ExtraTempDirs []string `mapstructure:"extra_temp_dirs"`
}

// EnvPrefix is the prefix for environment overrides (PCCARE_LOG_LEVEL, ...).
const EnvPrefix = "PCCARE"

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		UI: UIConfig{
			InvalidPause: time.Second,
			ClearScreen:  true,
		},
	}
}

// DefaultPath returns %APPDATA%\pccare\config.toml, or the platform user
// config dir equivalent when %APPDATA% is unset.
func DefaultPath() string {
	base := appData()
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		base = dir
	}
	return filepath.Join(base, "pccare", "config.toml")
}

// Load reads configuration from file and env. An explicit path (flag or
// PCCARE_CONFIG) must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("ui.invalid_pause", d.UI.InvalidPause)
	v.SetDefault("ui.clear_screen", d.UI.ClearScreen)
	v.SetDefault("paths.helldivers_dir", d.Paths.HelldiversDir)
	v.SetDefault("paths.extra_temp_dirs", []string{})

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func Validate(c Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q (want debug, info, warn or error)", c.Log.Level)
	}
	if c.UI.InvalidPause < 0 {
		return fmt.Errorf("invalid ui.invalid_pause %s: must not be negative", c.UI.InvalidPause)
	}
	for _, dir := range c.Paths.ExtraTempDirs {
		if err := CheckTempDir(dir); err != nil {
			return fmt.Errorf("invalid paths.extra_temp_dirs: %w", err)
		}
	}
	return nil
}
