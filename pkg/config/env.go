package config

const (
	EnvPrefix = "MHGEN"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "MHGEN_APP_ENV"
	EnvPort     = "MHGEN_APP_PORT"
	EnvLogLevel = "MHGEN_LOG_LEVEL"

	EnvDBDSN        = "MHGEN_DB_DSN"
	EnvDBSQLitePath = "MHGEN_DB_SQLITE_PATH"
	EnvDBHost       = "MHGEN_DB_HOST"
	EnvDBPort       = "MHGEN_DB_PORT"
	EnvDBUser       = "MHGEN_DB_USER"
	EnvDBPassword   = "MHGEN_DB_PASSWORD"
	EnvDBName       = "MHGEN_DB_NAME"

	EnvRedisURL = "MHGEN_REDIS_URL"

	EnvUseSQLite   = "MHGEN_USE_SQLITE"
	EnvAutoMigrate = "MHGEN_AUTO_MIGRATE"

	EnvPlacementInFlightTTL     = "MHGEN_PLACEMENT_INFLIGHT_TTL"
	EnvPlacementReportAllErrors = "MHGEN_PLACEMENT_REPORT_ALL_ERRORS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
