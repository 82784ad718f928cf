package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides where the optional YAML file is read from.
const PathEnvVar = "CONFIG_PATH"

var DefaultPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	Env      string         `koanf:"env" validate:"required"`
	Database DatabaseConfig `koanf:"database"`
	Broker   BrokerConfig   `koanf:"broker"`
	Storage  StorageConfig  `koanf:"storage"`
	Auth     AuthConfig     `koanf:"auth"`
	Sentry   SentryConfig   `koanf:"sentry"`
	Log      LogConfig      `koanf:"log"`
	Server   ServerConfig   `koanf:"server"`
	Outfit   OutfitConfig   `koanf:"outfit"`
}

type DatabaseConfig struct {
	Username        string        `koanf:"username"`
	Password        string        `koanf:"password"`
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	Name            string        `koanf:"name"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// DSN is the postgres url gorm connects with.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", d.Username, d.Password, d.Host, d.Port, d.Name)
}

type BrokerConfig struct {
	Address     string `koanf:"address"`
	Concurrency int    `koanf:"concurrency" validate:"min=1"`
}

type StorageConfig struct {
	BucketName      string `koanf:"bucket_name"`
	AccountID       string `koanf:"account_id"`
	AccessKeyID     string `koanf:"access_key_id"`
	AccessKeySecret string `koanf:"access_key_secret"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

type SentryConfig struct {
	DSN     string `koanf:"dsn"`
	Release string `koanf:"release"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type ServerConfig struct {
	Address       string `koanf:"address" validate:"required"`
	RateLimit     int    `koanf:"rate_limit" validate:"min=0"`
	EnableMetrics bool   `koanf:"enable_metrics"`
}

type OutfitConfig struct {
	NoveltyWindow       int           `koanf:"novelty_window" validate:"min=1"`
	MaxAttempts         int           `koanf:"max_attempts" validate:"min=1,max=50"`
	RecommendationCount int           `koanf:"recommendation_count" validate:"min=1,max=20"`
	SessionTTL          time.Duration `koanf:"session_ttl"`
	// Seed makes every engine reproducible; 0 seeds from the clock.
	Seed      int64  `koanf:"seed"`
	DailyCron string `koanf:"daily_cron" validate:"required"`
}

// Default is the configuration before any file or environment is applied.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Env: "local",
		Database: DatabaseConfig{
			Port:            "5432",
			MaxIdleConns:    10,
			MaxOpenConns:    300,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Broker: BrokerConfig{Concurrency: 10},
		Log:    LogConfig{Level: "info", Format: "json"},
		Server: ServerConfig{
			Address:       ":8083",
			RateLimit:     3,
			EnableMetrics: true,
		},
		Sentry: SentryConfig{Release: "stylistapi@1.0.0"},
		Outfit: OutfitConfig{
			NoveltyWindow:       10,
			MaxAttempts:         5,
			RecommendationCount: 5,
			SessionTTL:          30 * time.Minute,
			DailyCron:           "0 7 * * *",
		},
	}
}

// envKeys maps the environment names the service has always used to koanf
// paths. Variables not listed here are ignored.
var envKeys = map[string]string{
	"ENV":                         "env",
	"DB_USERNAME":                 "database.username",
	"DB_PASSWORD":                 "database.password",
	"DB_HOST":                     "database.host",
	"DB_PORT":                     "database.port",
	"DB_NAME":                     "database.name",
	"DB_MAX_OPEN_CONNS":           "database.max_open_conns",
	"ASYNC_BROKER_ADDRESS":        "broker.address",
	"ASYNC_CONCURRENCY":           "broker.concurrency",
	"R2_BUCKET_NAME":              "storage.bucket_name",
	"R2_ACCOUNT_ID":               "storage.account_id",
	"R2_ACCESS_KEY_ID":            "storage.access_key_id",
	"R2_ACCESS_KEY_SECRET":        "storage.access_key_secret",
	"JWT_SECRET":                  "auth.jwt_secret",
	"SENTRY_DSN":                  "sentry.dsn",
	"SENTRY_RELEASE":              "sentry.release",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"HTTP_ADDRESS":                "server.address",
	"HTTP_RATE_LIMIT":             "server.rate_limit",
	"ENABLE_METRICS":              "server.enable_metrics",
	"OUTFIT_NOVELTY_WINDOW":       "outfit.novelty_window",
	"OUTFIT_MAX_ATTEMPTS":         "outfit.max_attempts",
	"OUTFIT_RECOMMENDATION_COUNT": "outfit.recommendation_count",
	"OUTFIT_SESSION_TTL":          "outfit.session_ttl",
	"OUTFIT_SEED":                 "outfit.seed",
	"OUTFIT_DAILY_CRON":           "outfit.daily_cron",
}

func envTransform(key string) string {
	if path, ok := envKeys[strings.ToUpper(key)]; ok {
		return path
	}
	return ""
}

// Load reads defaults, then the optional YAML file, then the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path := findFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load for entry points.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.IsProduction() && c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid config: JWT_SECRET is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func findFile() string {
	if path := os.Getenv(PathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range DefaultPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
