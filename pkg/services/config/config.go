package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration. Values come from defaults, an
// optional YAML file, and ESTIMATE_PRESS_* environment overrides, in that
// order of precedence.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	MaxRows         int           `mapstructure:"max_rows"`
	MaxPages        int           `mapstructure:"max_pages"`
}

// Load reads configuration from the given file path. An empty path skips the
// file and uses defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":5000")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("max_body_bytes", int64(50*1024*1024))
	v.SetDefault("max_rows", 5000)
	v.SetDefault("max_pages", 200)

	v.SetEnvPrefix("ESTIMATE_PRESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}
