package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zeusync/moco/internal/core/export"
	"github.com/zeusync/moco/internal/core/observability/log"
)

// Config holds application configuration.
type Config struct {
	Export  ExportConfig `mapstructure:"export"`
	Log     LogConfig    `mapstructure:"log"`
	Workers int          `mapstructure:"workers"`
}

// ExportConfig holds output settings.
type ExportConfig struct {
	Format       string        `mapstructure:"format"`
	Name         string        `mapstructure:"name"`
	Out          string        `mapstructure:"out"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"format":        "export.format",
	"name":          "export.name",
	"out":           "export.out",
	"tick-interval": "export.tick_interval",
	"log-level":     "log.level",
	"workers":       "workers",
}

// Load reads configuration from defaults, an optional file, env and flags, in
// increasing priority. Env var overrides use prefix MOCO_. path may be empty,
// in which case MOCO_CONFIG or ./moco.{yaml,toml,json} is tried.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("export.format", export.FormatRaw.String())
	v.SetDefault("export.name", export.DefaultFileName)
	v.SetDefault("export.out", ".")
	v.SetDefault("export.tick_interval", export.DefaultTickInterval)
	v.SetDefault("log.level", log.LevelInfo.String())
	v.SetDefault("workers", 4)

	if path == "" {
		path = os.Getenv("MOCO_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("moco")
	}

	v.SetEnvPrefix("MOCO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

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
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Flags registers the command line flags Load understands.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (yaml, toml or json)")
	fs.StringP("format", "f", export.FormatRaw.String(), "export format: raw|arc")
	fs.StringP("name", "n", export.DefaultFileName, "output file name without extension")
	fs.StringP("out", "o", ".", "output directory")
	fs.Duration("tick-interval", export.DefaultTickInterval, "raw move sampling interval")
	fs.String("log-level", log.LevelInfo.String(), "log level: debug|info|warn|error")
	fs.IntP("workers", "w", 4, "scenes exported in parallel")
	return fs
}

// Validate checks values that would only fail later.
func (c Config) Validate() error {
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.Export.Name) == "" {
		return fmt.Errorf("%w: export name is empty", ErrInvalidConfig)
	}
	if c.Export.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, c.Export.TickInterval)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// ExportOptions converts the export section for the exporter.
func (c Config) ExportOptions() (export.Options, error) {
	format, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{
		FileName:     c.Export.Name,
		Format:       format,
		TickInterval: c.Export.TickInterval,
	}, nil
}

func (c Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}
