package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Placement    PlacementConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MHGEN_APP_ENV" required:"true"`
	Port         string `envconfig:"MHGEN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MHGEN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MHGEN_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is a comma separated allow-list.
	CORSOrigins []string `envconfig:"MHGEN_APP_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"MHGEN_DB_DSN"`
	SQLitePath string `envconfig:"MHGEN_DB_SQLITE_PATH" default:"mhgen.db"`

	LegacyHost     string `envconfig:"MHGEN_DB_HOST"`
	LegacyPort     int    `envconfig:"MHGEN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MHGEN_DB_USER"`
	LegacyPassword string `envconfig:"MHGEN_DB_PASSWORD"`
	LegacyName     string `envconfig:"MHGEN_DB_NAME"`
	LegacySSLMode  string `envconfig:"MHGEN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MHGEN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MHGEN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MHGEN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MHGEN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: without a URL or address the in-flight guard and
// idempotency replay are disabled.
type RedisConfig struct {
	URL          string        `envconfig:"MHGEN_REDIS_URL"`
	Address      string        `envconfig:"MHGEN_REDIS_ADDR"`
	Password     string        `envconfig:"MHGEN_REDIS_PASSWORD"`
	DB           int           `envconfig:"MHGEN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MHGEN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MHGEN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MHGEN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MHGEN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MHGEN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether enough connection detail was supplied to dial Redis.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MHGEN_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MHGEN_AUTO_MIGRATE" default:"false"`
}

type PlacementConfig struct {
	InFlightTTL     time.Duration `envconfig:"MHGEN_PLACEMENT_INFLIGHT_TTL" default:"30s"`
	IdempotencyTTL  time.Duration `envconfig:"MHGEN_PLACEMENT_IDEMPOTENCY_TTL" default:"24h"`
	ReportAllErrors bool          `envconfig:"MHGEN_PLACEMENT_REPORT_ALL_ERRORS" default:"false"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		if strings.TrimSpace(db.SQLitePath) == "" {
			return fmt.Errorf("%s is required when %s is set", EnvDBSQLitePath, EnvUseSQLite)
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
