package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Nominatim NominatimConfig `yaml:"nominatim" mapstructure:"nominatim"`
	Overpass  OverpassConfig  `yaml:"overpass" mapstructure:"overpass"`
	Locate    LocateConfig    `yaml:"locate" mapstructure:"locate"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// NominatimConfig holds reverse-geocoding service settings.
type NominatimConfig struct {
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent string  `yaml:"user_agent" mapstructure:"user_agent"`
	Zoom      int     `yaml:"zoom" mapstructure:"zoom"`
	RateRPS   float64 `yaml:"rate_rps" mapstructure:"rate_rps"`
}

// OverpassConfig holds area-query service settings.
type OverpassConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RadiusKm    int    `yaml:"radius_km" mapstructure:"radius_km"`
}

// LocateConfig configures the location resolution pipeline.
type LocateConfig struct {
	// PriorityMaxKm is the distance below which a priority-type area beats
	// a closer generic one.
	PriorityMaxKm float64 `yaml:"priority_max_km" mapstructure:"priority_max_km"`
	// CourtesyDelayMs is the pause between the geocoding and area-query
	// calls, as throttling courtesy toward the second service.
	CourtesyDelayMs int    `yaml:"courtesy_delay_ms" mapstructure:"courtesy_delay_ms"`
	ActivityPath    string `yaml:"activity_path" mapstructure:"activity_path"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentActivities int `yaml:"max_concurrent_activities" mapstructure:"max_concurrent_activities"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOCATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("nominatim.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("nominatim.user_agent", "locate-cli/1.0 (activity location finder)")
	v.SetDefault("nominatim.zoom", 10)
	v.SetDefault("nominatim.rate_rps", 1.0)
	v.SetDefault("overpass.base_url", "https://overpass-api.de/api/interpreter")
	v.SetDefault("overpass.timeout_secs", 30)
	v.SetDefault("overpass.radius_km", 100)
	v.SetDefault("locate.priority_max_km", 3.0)
	v.SetDefault("locate.courtesy_delay_ms", 1000)
	v.SetDefault("locate.activity_path", "./config/test_activity.json")
	v.SetDefault("batch.max_concurrent_activities", 2)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
