// Package config loads and validates application configuration from YAML files
// with environment-variable overrides. It provides typed structs for every
// subsystem (Server, Index, Search, Postgres, Kafka, Redis, Auth, etc.).
package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Index     IndexConfig     `yaml:"index"`
	Search    SearchConfig    `yaml:"search"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	CORSOrigins     []string      `yaml:"corsOrigins"`
}

// IndexConfig controls where indexes live and how often they are committed
// and merged.
type IndexConfig struct {
	BaseDir          string        `yaml:"baseDir"`
	CommitInterval   time.Duration `yaml:"commitInterval"`
	OptimizeInterval time.Duration `yaml:"optimizeInterval"`
	KeyLength        int           `yaml:"keyLength"`
	KeyCacheSize     int           `yaml:"keyCacheSize"`
	SynonymsPath     string        `yaml:"synonymsPath"`
}

// SearchConfig controls query templates and result limits.
type SearchConfig struct {
	TemplatesPath     string            `yaml:"templatesPath"`
	WatchTemplates    bool              `yaml:"watchTemplates"`
	PersonQuery       string            `yaml:"personQuery"`
	PersonDefaults    map[string]string `yaml:"personDefaults"`
	DefaultTopResults int               `yaml:"defaultTopResults"`
	MaxTopResults     int               `yaml:"maxTopResults"`
	BatchConcurrency  int               `yaml:"batchConcurrency"`
	CacheEnabled      bool              `yaml:"cacheEnabled"`
	TemplateCacheSize int64             `yaml:"templateCacheSize"`
}

// PostgresConfig holds PostgreSQL connection parameters.
type PostgresConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Database        string        `yaml:"database"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"sslMode"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

// DSN returns a lib/pq-compatible data source name.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// KafkaConfig holds Kafka broker and topic settings.
type KafkaConfig struct {
	Enabled       bool        `yaml:"enabled"`
	Brokers       []string    `yaml:"brokers"`
	ConsumerGroup string      `yaml:"consumerGroup"`
	Topics        KafkaTopics `yaml:"topics"`
}

// KafkaTopics maps logical topic names to their Kafka topic strings.
type KafkaTopics struct {
	IndexRequests     string `yaml:"indexRequests"`
	AnalyticsEvents   string `yaml:"analyticsEvents"`
	PersonSearchBatch string `yaml:"personSearchBatch"`
}

// RedisConfig holds Redis connection and caching parameters.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// AuthConfig controls API key authentication and per-key rate limiting.
type AuthConfig struct {
	Enabled          bool          `yaml:"enabled"`
	RateLimitWindow  time.Duration `yaml:"rateLimitWindow"`
	DefaultRateLimit int           `yaml:"defaultRateLimit"`
	KeyCacheTTL      time.Duration `yaml:"keyCacheTTL"`
}

// AnalyticsConfig controls the search event pipeline.
type AnalyticsConfig struct {
	Port             int           `yaml:"port"`
	BufferSize       int           `yaml:"bufferSize"`
	SnapshotInterval time.Duration `yaml:"snapshotInterval"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig controls span logging.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate float64 `yaml:"sampleRate"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports missing required settings as configuration errors.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Index.BaseDir) == "" {
		missing = append(missing, "index.baseDir")
	}
	if c.Index.CommitInterval <= 0 {
		missing = append(missing, "index.commitInterval")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		missing = append(missing, "kafka.brokers")
	}
	if c.Auth.Enabled && !c.Postgres.Enabled {
		missing = append(missing, "postgres.enabled (required by auth.enabled)")
	}
	if len(missing) > 0 {
		return apperrors.Newf(apperrors.ErrConfiguration, http.StatusInternalServerError,
			"missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// defaultConfig returns a Config with defaults suitable for local
// development.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			RequestTimeout:  25 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Index: IndexConfig{
			BaseDir:        "data/indexes",
			CommitInterval: time.Minute,
			KeyLength:      8,
			KeyCacheSize:   4096,
		},
		Search: SearchConfig{
			TemplatesPath:     "configs/search-queries.xml",
			PersonQuery:       "PersonSearch",
			PersonDefaults:    defaultPersonTokens(),
			DefaultTopResults: 10,
			MaxTopResults:     500,
			BatchConcurrency:  4,
			TemplateCacheSize: 1 << 20,
		},
		Postgres: PostgresConfig{
			Host:            "localhost",
			Port:            5432,
			Database:        "namesearch",
			User:            "namesearch",
			Password:        "localdev",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers:       []string{"localhost:9092"},
			ConsumerGroup: "namesearch-group",
			Topics: KafkaTopics{
				IndexRequests:     "index-requests",
				AnalyticsEvents:   "search-analytics",
				PersonSearchBatch: "person-search-batch",
			},
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: 10,
			CacheTTL: 60 * time.Second,
		},
		Auth: AuthConfig{
			RateLimitWindow:  time.Minute,
			DefaultRateLimit: 600,
			KeyCacheTTL:      30 * time.Second,
		},
		Analytics: AnalyticsConfig{
			Port:             8083,
			BufferSize:       10000,
			SnapshotInterval: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			SampleRate: 1,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
		},
	}
}

// defaultPersonTokens are applied to person searches that leave these
// template parameters unset.
func defaultPersonTokens() map[string]string {
	return map[string]string{
		"MinimumFieldMatches": "2",
		"FirstNameTolerance":  "0.75",
		"MiddleNameTolerance": "0.75",
		"LastNameTolerance":   "0.75",
		"BirthDateTolerance":  "0.7",
	}
}

// applyEnvOverrides reads NS_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NS_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("NS_INDEX_BASE_DIR"); v != "" {
		cfg.Index.BaseDir = v
	}
	if v := os.Getenv("NS_INDEX_COMMIT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Index.CommitInterval = d
		}
	}
	if v := os.Getenv("NS_INDEX_SYNONYMS_PATH"); v != "" {
		cfg.Index.SynonymsPath = v
	}
	if v := os.Getenv("NS_SEARCH_TEMPLATES_PATH"); v != "" {
		cfg.Search.TemplatesPath = v
	}
	if v := os.Getenv("NS_SEARCH_PERSON_QUERY"); v != "" {
		cfg.Search.PersonQuery = v
	}
	if v := os.Getenv("NS_POSTGRES_ENABLED"); v != "" {
		cfg.Postgres.Enabled = parseBool(v, cfg.Postgres.Enabled)
	}
	if v := os.Getenv("NS_POSTGRES_HOST"); v != "" {
		cfg.Postgres.Host = v
	}
	if v := os.Getenv("NS_POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.Port = port
		}
	}
	if v := os.Getenv("NS_POSTGRES_DATABASE"); v != "" {
		cfg.Postgres.Database = v
	}
	if v := os.Getenv("NS_POSTGRES_USER"); v != "" {
		cfg.Postgres.User = v
	}
	if v := os.Getenv("NS_POSTGRES_PASSWORD"); v != "" {
		cfg.Postgres.Password = v
	}
	if v := os.Getenv("NS_POSTGRES_SSLMODE"); v != "" {
		cfg.Postgres.SSLMode = v
	}
	if v := os.Getenv("NS_KAFKA_ENABLED"); v != "" {
		cfg.Kafka.Enabled = parseBool(v, cfg.Kafka.Enabled)
	}
	if v := os.Getenv("NS_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("NS_REDIS_ENABLED"); v != "" {
		cfg.Redis.Enabled = parseBool(v, cfg.Redis.Enabled)
	}
	if v := os.Getenv("NS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("NS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("NS_AUTH_ENABLED"); v != "" {
		cfg.Auth.Enabled = parseBool(v, cfg.Auth.Enabled)
	}
	if v := os.Getenv("NS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("NS_TRACING_ENABLED"); v != "" {
		cfg.Tracing.Enabled = parseBool(v, cfg.Tracing.Enabled)
	}
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
