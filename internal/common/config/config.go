// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

const (
	BackendBigQuery = "bigquery"
	BackendPostgres = "postgres"

	// DefaultTableID is the public sample dataset the tools fall back to.
	DefaultTableID = "your-project.places_insights_us_sample.places"

	// DefaultPostgresTableID is the schema-qualified table a postgres warehouse
	// falls back to. Postgres cannot address another database's tables.
	DefaultPostgresTableID = "public.places"

	DefaultMapsBaseURL = "https://maps.googleapis.com"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Maps          MapsConfig              `mapstructure:"maps"`
	Warehouse     WarehouseConfig         `mapstructure:"warehouse"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Cache         CacheConfig             `mapstructure:"cache"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Logging       LoggingConfig           `mapstructure:"logging"`
	Observability ObservabilityConfig     `mapstructure:"observability"`
	Server        ServerConfig            `mapstructure:"server"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress string `mapstructure:"broker_address"`
	Plaintext     bool   `mapstructure:"plaintext"`
}

// MapsConfig configures the places details API.
type MapsConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// WarehouseConfig selects and addresses the analytics warehouse.
type WarehouseConfig struct {
	Backend   string        `mapstructure:"backend"`
	TableID   string        `mapstructure:"table_id"`
	ProjectID string        `mapstructure:"project_id"`
	Location  string        `mapstructure:"location"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig controls the market analysis result cache. Caching is active only when
// enabled and a redis address is configured.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// WorkerConfig holds the settings applicable to every tool worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ObservabilityConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TraceStdout bool   `mapstructure:"trace_stdout"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}
