package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// remote food catalog
	FoodCatalogURL      string `toml:"food_catalog_url"`
	FoodCatalogPageSize int    `toml:"food_catalog_page_size"`

	// search resolver
	SearchMinResults   int `toml:"search_min_results"`
	CacheFreshnessDays int `toml:"cache_freshness_days"`
	CorrelationWindow  int `toml:"correlation_window_days"`
	SuggestionWindow   int `toml:"suggestion_window_days"`

	// bundled reference datasets
	ExercisesDataPath   string `toml:"exercises_data_path"`
	StapleFoodsDataPath string `toml:"staple_foods_data_path"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %q missing", env)
	}

	cfg.Environment = env
	if cfg.SearchMinResults <= 0 {
		cfg.SearchMinResults = 30
	}
	if cfg.CacheFreshnessDays <= 0 {
		cfg.CacheFreshnessDays = 30
	}
	if cfg.SuggestionWindow <= 0 {
		cfg.SuggestionWindow = 7
	}
	if cfg.FoodCatalogPageSize <= 0 {
		cfg.FoodCatalogPageSize = 30
	}

	return cfg, nil
}
