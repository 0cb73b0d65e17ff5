package constants

const (
	ViperAppEnvKey        = "app.env"
	ViperHTTPAddrKey      = "http.addr"
	ViperCORSOriginsKey   = "http.cors_origins"
	ViperDBDSNKey         = "db.dsn"
	ViperDBMaxConnsKey    = "db.max_conns"
	ViperDBConnectRetries = "db.connect_retries"
	ViperLogLevelKey      = "log.level"
	ViperLogJSONKey       = "log.json"
	ViperSecretKey        = "admin.secret"
	ViperJWTKey           = "admin.jwt_key"
	ViperAdminTokenTTLKey = "admin.token_ttl"
	ViperNoteAuthorKey    = "fin.note_author"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const CookieKeySecretToken = "landscape_admin"

const (
	PartyTypeVendor   = "vendor"
	DefaultVendorRole = "vendor"
	DefaultNoteAuthor = "system"

	BaselineBudgetName   = "Baseline"
	BaselineBudgetStatus = "draft"

	VendorSearchLimit = 50
)
