package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Redis    RedisConfig    `yaml:"redis"`
}

type AppConfig struct {
	AppName     string   `yaml:"name"`
	Environment string   `yaml:"env"`
	HTTPPort    string   `yaml:"http_port"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	DBHost     string `yaml:"host"`
	DBPort     string `yaml:"port"`
	DBName     string `yaml:"name"`
	DBUser     string `yaml:"user"`
	DBPassword string `yaml:"password"`
	DBSSLMode  string `yaml:"ssl_mode"`

	ConnectTimeout        time.Duration `yaml:"connect_timeout"`
	PoolMaxConns          int32         `yaml:"pool_max_conns"`
	PoolMinConns          int32         `yaml:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `yaml:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `yaml:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `yaml:"pool_health_check_period"`

	MigrationsDir string `yaml:"migrations_dir"`
}

type JWTConfig struct {
	AccessSecret     string        `yaml:"access_secret"`
	RefreshSecret    string        `yaml:"refresh_secret"`
	AccessExpiresIn  time.Duration `yaml:"access_expires_in"`
	RefreshExpiresIn time.Duration `yaml:"refresh_expires_in"`
}

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

const (
	defaultAccessExpiresIn  = 7 * 24 * time.Hour
	defaultRefreshExpiresIn = 30 * 24 * time.Hour
	defaultRedisTTL         = 10 * time.Minute
)

var (
	ErrMissingRequiredEnv = errors.New("missing required environment variables")
	ErrInvalidConfig      = errors.New("invalid configuration values")
)

// Load reads .env (if any), then the YAML file named by CONFIG_FILE (if any),
// and finally lets environment variables override both.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	var invalid []string

	str := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	dur := func(dst *time.Duration, key string) {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return
		}
		*dst = d
	}
	i32 := func(dst *int32, key string) {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			invalid = append(invalid, key)
			return
		}
		*dst = int32(n)
	}

	str(&cfg.App.AppName, "APP_NAME")
	str(&cfg.App.Environment, "APP_ENV")
	str(&cfg.App.HTTPPort, "HTTP_PORT")
	str(&cfg.App.LogLevel, "LOG_LEVEL")
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		cfg.App.CORSOrigins = splitList(v)
	}

	str(&cfg.Database.DBHost, "DB_HOST")
	str(&cfg.Database.DBPort, "DB_PORT")
	str(&cfg.Database.DBName, "DB_NAME")
	str(&cfg.Database.DBUser, "DB_USER")
	str(&cfg.Database.DBPassword, "DB_PASSWORD")
	str(&cfg.Database.DBSSLMode, "DB_SSL_MODE")
	dur(&cfg.Database.ConnectTimeout, "DB_CONNECT_TIMEOUT")
	i32(&cfg.Database.PoolMaxConns, "DB_POOL_MAX_CONNS")
	i32(&cfg.Database.PoolMinConns, "DB_POOL_MIN_CONNS")
	dur(&cfg.Database.PoolMaxConnLifetime, "DB_POOL_MAX_CONN_LIFETIME")
	dur(&cfg.Database.PoolMaxConnIdleTime, "DB_POOL_MAX_CONN_IDLE_TIME")
	dur(&cfg.Database.PoolHealthCheckPeriod, "DB_POOL_HEALTH_CHECK_PERIOD")
	str(&cfg.Database.MigrationsDir, "DB_MIGRATIONS_DIR")

	str(&cfg.JWT.AccessSecret, "JWT_ACCESS_SECRET")
	str(&cfg.JWT.RefreshSecret, "JWT_REFRESH_SECRET")
	dur(&cfg.JWT.AccessExpiresIn, "JWT_ACCESS_EXPIRES_IN")
	dur(&cfg.JWT.RefreshExpiresIn, "JWT_REFRESH_EXPIRES_IN")

	str(&cfg.Redis.Host, "REDIS_HOST")
	str(&cfg.Redis.Port, "REDIS_PORT")
	str(&cfg.Redis.Password, "REDIS_PASSWORD")
	dur(&cfg.Redis.TTL, "REDIS_TTL")
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			invalid = append(invalid, "REDIS_DB")
		} else {
			cfg.Redis.DB = n
		}
	}

	// Credentialed CORS cannot be combined with a wildcard origin.
	for _, o := range cfg.App.CORSOrigins {
		if o == "*" {
			invalid = append(invalid, "CORS_ORIGINS")
			break
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(invalid, ", "))
	}

	var missing []string
	req := func(v, key string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
	}
	req(cfg.App.AppName, "APP_NAME")
	req(cfg.App.Environment, "APP_ENV")
	req(cfg.App.HTTPPort, "HTTP_PORT")
	req(cfg.JWT.AccessSecret, "JWT_ACCESS_SECRET")
	req(cfg.JWT.RefreshSecret, "JWT_REFRESH_SECRET")

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredEnv, strings.Join(missing, ", "))
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if len(cfg.App.CORSOrigins) == 0 {
		cfg.App.CORSOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}
	if cfg.JWT.AccessExpiresIn <= 0 {
		cfg.JWT.AccessExpiresIn = defaultAccessExpiresIn
	}
	if cfg.JWT.RefreshExpiresIn <= 0 {
		cfg.JWT.RefreshExpiresIn = defaultRefreshExpiresIn
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}
	if cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = defaultRedisTTL
	}
}

func (c AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development") || strings.EqualFold(c.Environment, "dev")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
