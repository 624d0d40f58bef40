package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

const (
	MatchSourceFilesystem = "filesystem"
	MatchSourcePostgres   = "postgres"
	MatchSourceMemory     = "memory"

	TeamMatchModeSubstring = "substring"
	TeamMatchModeExact     = "exact"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	DataBasePath                  string
	MatchSource                   string
	TeamMatchMode                 string
	DBURL                         string
	DBDisablePreparedBinary       bool
	CacheEnabled                  bool
	CacheTTL                      time.Duration
	RedisURL                      string
	RedisKeyPrefix                string
	NewsAPIURL                    string
	StandingsAPIURL               string
	FixturesAPIURL                string
	ExternalTimeout               time.Duration
	ExternalMaxRetries            int
	ExternalCircuitEnabled        bool
	ExternalCircuitFailureCount   int
	ExternalCircuitOpenTimeout    time.Duration
	ExternalCircuitHalfOpenMaxReq int
	ArchiveWorkers                int
	CORSAllowedOrigins            []string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	InternalJobToken              string
	PprofEnabled                  bool
	PprofAddr                     string
	UptraceEnabled                bool
	UptraceDSN                    string
	UptraceLogsEnabled            bool
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	LogLevel                      logging.Level
}

// ArchiveEnabled reports whether a database is configured for the match
// archive. The archive import route and MATCH_SOURCE=postgres need it.
func (c Config) ArchiveEnabled() bool {
	return strings.TrimSpace(c.DBURL) != ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	matchSource, err := parseMatchSource(getEnv("MATCH_SOURCE", MatchSourceFilesystem))
	if err != nil {
		return Config{}, err
	}
	teamMatchMode, err := parseTeamMatchMode(getEnv("TEAM_MATCH_MODE", TeamMatchModeSubstring))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if matchSource == MatchSourcePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when MATCH_SOURCE=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	externalTimeout, err := time.ParseDuration(getEnv("EXTERNAL_TIMEOUT", "8s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EXTERNAL_TIMEOUT: %w", err)
	}
	if externalTimeout <= 0 {
		return Config{}, fmt.Errorf("EXTERNAL_TIMEOUT must be > 0")
	}
	externalMaxRetries, err := getEnvAsInt("EXTERNAL_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse EXTERNAL_MAX_RETRIES: %w", err)
	}
	if externalMaxRetries < 0 {
		return Config{}, fmt.Errorf("EXTERNAL_MAX_RETRIES must be >= 0")
	}
	externalCircuitEnabled, err := strconv.ParseBool(getEnv("EXTERNAL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EXTERNAL_CIRCUIT_ENABLED: %w", err)
	}
	externalCircuitFailureCount, err := getEnvAsInt("EXTERNAL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse EXTERNAL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if externalCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("EXTERNAL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	externalCircuitOpenTimeout, err := time.ParseDuration(getEnv("EXTERNAL_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EXTERNAL_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if externalCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("EXTERNAL_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	externalCircuitHalfOpenMaxReq, err := getEnvAsInt("EXTERNAL_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse EXTERNAL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if externalCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("EXTERNAL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	archiveWorkers, err := getEnvAsInt("ARCHIVE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse ARCHIVE_WORKERS: %w", err)
	}
	if archiveWorkers < 1 {
		return Config{}, fmt.Errorf("ARCHIVE_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "match-analyst-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      getEnv("APP_HTTP_ADDR", ":8080"),
		DataBasePath:                  strings.TrimSpace(getEnv("DATA_BASE_PATH", "football.json-master")),
		MatchSource:                   matchSource,
		TeamMatchMode:                 teamMatchMode,
		DBURL:                         dbURL,
		DBDisablePreparedBinary:       dbDisablePreparedBinary,
		CacheEnabled:                  cacheEnabled,
		CacheTTL:                      cacheTTL,
		RedisURL:                      strings.TrimSpace(getEnv("REDIS_URL", "")),
		RedisKeyPrefix:                strings.TrimSpace(getEnv("REDIS_KEY_PREFIX", "match-analyst:")),
		NewsAPIURL:                    strings.TrimSpace(getEnv("NEWS_API_URL", "https://football-news-api.onrender.com/news")),
		StandingsAPIURL:               strings.TrimSpace(getEnv("STANDINGS_API_URL", "https://crset.vercel.app/api/standings")),
		FixturesAPIURL:                strings.TrimSpace(getEnv("FIXTURES_API_URL", "https://football-api-production.up.railway.app/api/v1/matches")),
		ExternalTimeout:               externalTimeout,
		ExternalMaxRetries:            externalMaxRetries,
		ExternalCircuitEnabled:        externalCircuitEnabled,
		ExternalCircuitFailureCount:   externalCircuitFailureCount,
		ExternalCircuitOpenTimeout:    externalCircuitOpenTimeout,
		ExternalCircuitHalfOpenMaxReq: externalCircuitHalfOpenMaxReq,
		ArchiveWorkers:                archiveWorkers,
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		InternalJobToken:              strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		UptraceLogsEnabled:            uptraceLogsEnabled,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		LogLevel:                      logging.ParseLevel(strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_LEVEL", "info")))),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseMatchSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case MatchSourceFilesystem, MatchSourcePostgres, MatchSourceMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid MATCH_SOURCE %q: valid values are %s, %s, %s", v, MatchSourceFilesystem, MatchSourcePostgres, MatchSourceMemory)
	}
}

func parseTeamMatchMode(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case TeamMatchModeSubstring, TeamMatchModeExact:
		return value, nil
	default:
		return "", fmt.Errorf("invalid TEAM_MATCH_MODE %q: valid values are %s, %s", v, TeamMatchModeSubstring, TeamMatchModeExact)
	}
}
