package env

const (
	EnvConfigPath = "CONFIG_PATH"
	EnvHttpPort   = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"

	EnvJwtSecret = "JWT_SECRET"

	EnvStartBalance = "START_BALANCE"
	EnvTxMaxRetries = "TX_MAX_RETRIES"
	EnvLogFormat    = "LOG_FORMAT"
)
