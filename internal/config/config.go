package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/haytac/emoji-filter/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. EMOJI_FILTER_IMAGES_ROOT.
const EnvPrefix = "EMOJI_FILTER"

// AppConfig holds the application configuration.
type AppConfig struct {
	ImagesRoot string         `mapstructure:"images_root"`
	IgnoreCase bool           `mapstructure:"ignore_case"`
	Dataset    DatasetConfig  `mapstructure:"dataset"`
	Output     OutputConfig   `mapstructure:"output"`
	Log        logging.Config `mapstructure:"log"`
	Metrics    MetricsConfig  `mapstructure:"metrics"`
}

// DatasetConfig selects where emoji records come from.
type DatasetConfig struct {
	File string `mapstructure:"file"` // gemoji emoji.json; empty uses the built-in code map
}

// OutputConfig controls the launcher item layout.
type OutputConfig struct {
	Format   string `mapstructure:"format"`   // structured | legacy
	Modifier string `mapstructure:"modifier"` // key name under "mods"
}

// MetricsConfig points at an optional Prometheus Pushgateway.
type MetricsConfig struct {
	PushgatewayURL string        `mapstructure:"pushgateway_url"`
	Job            string        `mapstructure:"job"`
	Timeout        time.Duration `mapstructure:"timeout"` // bounds the push; stdout is already written
}

// LoadConfig loads configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func LoadConfig(configPath string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	v.SetDefault("images_root", "images")
	v.SetDefault("ignore_case", false)
	v.SetDefault("dataset.file", "")
	v.SetDefault("output.format", "structured")
	v.SetDefault("output.modifier", "ctrl")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.console", true)
	v.SetDefault("log.time_format", time.RFC3339)
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", "emoji_filter")
	v.SetDefault("metrics.timeout", time.Second)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.emoji-filter")
		v.AddConfigPath("/etc/emoji-filter/")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
