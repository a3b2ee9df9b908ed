// SPDX-License-Identifier: MIT
//
// Package config loads fortgraph settings from a YAML file, FORTGRAPH_*
// environment variables and built-in defaults, in that order of precedence
// (environment first).
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fortgraph/mapgen"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. FORTGRAPH_MAP_SEED.
const EnvPrefix = "FORTGRAPH"

// Config is the root configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Map     MapConfig     `mapstructure:"map" yaml:"map"`
	Routing RoutingConfig `mapstructure:"routing" yaml:"routing"`
}

// LoggerConfig drives internal/observability.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// MapConfig mirrors mapgen.Params.
type MapConfig struct {
	Width         int     `mapstructure:"width" yaml:"width"`
	Height        int     `mapstructure:"height" yaml:"height"`
	Scale         int     `mapstructure:"scale" yaml:"scale"`
	Castles       int     `mapstructure:"castles" yaml:"castles"`
	Kingdoms      int     `mapstructure:"kingdoms" yaml:"kingdoms"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	LandThreshold float64 `mapstructure:"land_threshold" yaml:"land_threshold"`
	LinkRadius    float64 `mapstructure:"link_radius" yaml:"link_radius"`
}

// Params converts the section to generation parameters.
func (m MapConfig) Params() mapgen.Params {
	return mapgen.Params{
		Width:         m.Width,
		Height:        m.Height,
		Scale:         m.Scale,
		Castles:       m.Castles,
		Kingdoms:      m.Kingdoms,
		Seed:          m.Seed,
		LandThreshold: m.LandThreshold,
		LinkRadius:    m.LinkRadius,
	}
}

// RoutingConfig tunes route planning.
type RoutingConfig struct {
	// Workers bounds concurrent route queries; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// FordFactor multiplies the cost of roads crossing water; 0 or 1 disables it.
	FordFactor float64 `mapstructure:"ford_factor" yaml:"ford_factor"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := mapgen.DefaultParams()

	return Config{
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "fortgraph",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      7,
		},
		Map: MapConfig{
			Width:         p.Width,
			Height:        p.Height,
			Scale:         p.Scale,
			Castles:       p.Castles,
			Kingdoms:      p.Kingdoms,
			LandThreshold: mapgen.DefaultLandThreshold,
		},
		Routing: RoutingConfig{FordFactor: 1},
	}
}

// SetDefaults registers Default() in v so every key resolves.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("logger.add_source", d.Logger.AddSource)
	v.SetDefault("logger.service_name", d.Logger.ServiceName)
	v.SetDefault("logger.log_file", d.Logger.LogFile)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.compress", d.Logger.Compress)

	v.SetDefault("map.width", d.Map.Width)
	v.SetDefault("map.height", d.Map.Height)
	v.SetDefault("map.scale", d.Map.Scale)
	v.SetDefault("map.castles", d.Map.Castles)
	v.SetDefault("map.kingdoms", d.Map.Kingdoms)
	v.SetDefault("map.seed", d.Map.Seed)
	v.SetDefault("map.land_threshold", d.Map.LandThreshold)
	v.SetDefault("map.link_radius", d.Map.LinkRadius)

	v.SetDefault("routing.workers", d.Routing.Workers)
	v.SetDefault("routing.ford_factor", d.Routing.FordFactor)
}

// NewViper returns a viper instance with defaults, FORTGRAPH_* environment
// binding and, if found, the config file. An empty file searches for
// fortgraph.yaml in the working directory; a missing file is not an error
// then, but an explicit file must exist.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fortgraph")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the logger and routing sections and the map parameters.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logger.format must be console or json, got %q", ErrInvalidConfig, c.Logger.Format)
	}
	if c.Routing.Workers < 0 {
		return fmt.Errorf("%w: routing.workers cannot be negative", ErrInvalidConfig)
	}
	if c.Routing.FordFactor != 0 && c.Routing.FordFactor < 1 {
		return fmt.Errorf("%w: routing.ford_factor must be >= 1", ErrInvalidConfig)
	}
	if _, err := c.Map.Params().Validate(); err != nil {
		return fmt.Errorf("%w: map: %w", ErrInvalidConfig, err)
	}

	return nil
}

// WriteDefault writes Default() as YAML.
func WriteDefault(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return fmt.Errorf("config: encode defaults: %w", err)
	}

	return enc.Close()
}
