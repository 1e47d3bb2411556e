// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// tableIDPattern accepts plain dotted identifiers such as project.dataset.table.
var tableIDPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]+(\.[A-Za-z0-9_\-]+){0,2}$`)

// Load reads configs/config.yaml, the APP_ENVIRONMENT overlay, .env and the process
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // overlay is optional

	expandEnvVars(v)

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok || !strings.Contains(strVal, "$") {
			continue
		}
		if expanded := os.ExpandEnv(strVal); expanded != strVal && expanded != "" {
			v.Set(key, expanded)
		}
	}
}

// overrideFromEnv fills settings from the well-known variable names the tools have
// always honoured, when the config file left them empty.
func overrideFromEnv(cfg *Config) {
	if cfg.Maps.APIKey == "" {
		cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	}
	if val := os.Getenv("PLACES_BQ_TABLE_ID"); val != "" && cfg.Warehouse.TableID == DefaultTableID {
		cfg.Warehouse.TableID = val
	}
	if cfg.Warehouse.ProjectID == "" {
		cfg.Warehouse.ProjectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "location-strategy-workers"
	}
	if cfg.Maps.BaseURL == "" {
		cfg.Maps.BaseURL = DefaultMapsBaseURL
	}
	if cfg.Maps.Timeout <= 0 {
		cfg.Maps.Timeout = 10 * time.Second
	}
	if cfg.Warehouse.Backend == "" {
		cfg.Warehouse.Backend = BackendBigQuery
	}
	if cfg.Warehouse.TableID == "" {
		cfg.Warehouse.TableID = DefaultTableID
		if cfg.Warehouse.Backend == BackendPostgres {
			cfg.Warehouse.TableID = DefaultPostgresTableID
		}
	}
	if cfg.Warehouse.Timeout <= 0 {
		cfg.Warehouse.Timeout = 30 * time.Second
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 15 * time.Minute
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = cfg.App.Name
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Workers == nil {
		cfg.Workers = map[string]WorkerConfig{}
	}
}

// Validate rejects configurations the tools cannot run with.
func Validate(cfg *Config) error {
	switch cfg.Warehouse.Backend {
	case BackendBigQuery, BackendPostgres:
	default:
		return fmt.Errorf("warehouse.backend must be %q or %q, got %q",
			BackendBigQuery, BackendPostgres, cfg.Warehouse.Backend)
	}
	if !tableIDPattern.MatchString(cfg.Warehouse.TableID) {
		return fmt.Errorf("warehouse.table_id %q is not a dotted identifier", cfg.Warehouse.TableID)
	}
	if cfg.Warehouse.Backend == BackendPostgres && strings.Count(cfg.Warehouse.TableID, ".") > 1 {
		return fmt.Errorf("warehouse.table_id %q must be table or schema.table for the postgres backend",
			cfg.Warehouse.TableID)
	}
	for name, w := range cfg.Workers {
		if w.Enabled && w.MaxJobsActive <= 0 {
			return fmt.Errorf("workers.%s.max_jobs_active must be positive", name)
		}
	}
	return nil
}

// Worker returns the settings for taskType, defaulting to enabled with sensible limits.
func (c *Config) Worker(taskType string) WorkerConfig {
	if w, ok := c.Workers[taskType]; ok {
		return w
	}
	return WorkerConfig{Enabled: true, MaxJobsActive: 5, Timeout: 60000}
}
