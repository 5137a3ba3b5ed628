package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// TAPAY_-prefixed names so the prefix stays empty here.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "TAPAY_DB_DSN"
	EnvDBHost = "TAPAY_DB_HOST"
	EnvDBUser = "TAPAY_DB_USER"
	EnvDBName = "TAPAY_DB_NAME"
)

var componentDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
