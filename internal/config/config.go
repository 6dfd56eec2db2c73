package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds console behaviour.
type UIConfig struct {
	// NoticeTTL is how long a notification stays in the status bar.
	NoticeTTL time.Duration `mapstructure:"notice_ttl"`
	// AutoRefresh reloads the visible table on this interval; zero disables it.
	AutoRefresh time.Duration `mapstructure:"auto_refresh"`
}

// LogConfig holds log output settings. The terminal is owned by the UI, so
// logs always go to a file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// RTYPE_ADMIN_. A non-empty path overrides RTYPE_ADMIN_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "rtype.db")
	v.SetDefault("ui.notice_ttl", "3s")
	v.SetDefault("ui.auto_refresh", "0s")
	v.SetDefault("log.path", filepath.Join(stateDir(), "admin.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("RTYPE_ADMIN_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rtype-admin"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RTYPE_ADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); explicit || !missing {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.NoticeTTL <= 0 {
		c.UI.NoticeTTL = 3 * time.Second
	}
	if c.UI.AutoRefresh < 0 {
		c.UI.AutoRefresh = 0
	}
	return c, nil
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "rtype-admin")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "rtype-admin")
}
