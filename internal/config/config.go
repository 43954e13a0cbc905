// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
		BaseURL      string        `json:"base_url"`
	}
	Storage struct {
		// Backend selects the blob store implementation; only "local" ships.
		Backend  string `json:"backend"`
		LocalDir string `json:"local_dir"`
	} `json:"storage"`
	Capability struct {
		// Secret signs upload and download capability tokens. Independent of
		// the JWT secret so the two can rotate separately.
		Secret string `json:"secret"`
	} `json:"capability"`
	Upload struct {
		// ContentTypeAllowlist is the set of accepted MIME types for asset allocation.
		ContentTypeAllowlist []string `json:"content_type_allowlist"`
		// Per-kind byte-size ceilings.
		MaxImageBytes int64 `json:"max_image_bytes"`
		MaxVideoBytes int64 `json:"max_video_bytes"`
		MaxAudioBytes int64 `json:"max_audio_bytes"`
		MaxOtherBytes int64 `json:"max_other_bytes"`
		// TokenTTL bounds upload capability tokens.
		TokenTTL time.Duration `json:"token_ttl"`
		// EnableScan turns on the content-scan hook before committing bytes.
		EnableScan bool `json:"enable_scan"`
	} `json:"upload"`
	Download struct {
		TokenTTL time.Duration `json:"token_ttl"`
		// CacheTTL for minted signed URLs; zero disables the cache.
		CacheTTL time.Duration `json:"cache_ttl"`
	} `json:"download"`
	RateLimit struct {
		LoginPerMinute  int `json:"login_per_minute"`
		IngestPerMinute int `json:"ingest_per_minute"`
	} `json:"rate_limit"`
	// IngestEnabled is the kill switch: false makes publish/append return 503.
	IngestEnabled bool `json:"ingest_enabled"`
	// DefaultOrgID receives open signups that carry no pending shares.
	DefaultOrgID string `json:"default_org_id"`
}

const mb = int64(1024 * 1024)

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "dataviewer")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "dev-secret-change-in-production")
	cfg.Capability.Secret = getEnv("CAPABILITY_SECRET", "dev-capability-secret")
	cfg.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRY", time.Hour)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	// Storage configuration
	cfg.Storage.Backend = getEnv("STORAGE_BACKEND", "local")
	cfg.Storage.LocalDir = getEnv("STORAGE_LOCAL_DIR", "./dev_assets")

	// Upload configuration
	cfg.Upload.ContentTypeAllowlist = splitCSV(getEnv(
		"UPLOAD_CONTENT_TYPES",
		"image/png,image/jpeg,image/webp,video/mp4,audio/mpeg,audio/wav,audio/webm,text/vtt,application/json",
	))
	cfg.Upload.MaxImageBytes = getEnvInt64("UPLOAD_MAX_IMAGE_MB", 50) * mb
	cfg.Upload.MaxVideoBytes = getEnvInt64("UPLOAD_MAX_VIDEO_MB", 500) * mb
	cfg.Upload.MaxAudioBytes = getEnvInt64("UPLOAD_MAX_AUDIO_MB", 100) * mb
	cfg.Upload.MaxOtherBytes = getEnvInt64("UPLOAD_MAX_OTHER_MB", 10) * mb
	cfg.Upload.TokenTTL = getEnvDuration("UPLOAD_TOKEN_TTL", 5*time.Minute)
	cfg.Upload.EnableScan = getEnvBool("UPLOAD_ENABLE_SCAN", false)

	// Download configuration
	cfg.Download.TokenTTL = getEnvDuration("DOWNLOAD_TOKEN_TTL", 5*time.Minute)
	cfg.Download.CacheTTL = getEnvDuration("DOWNLOAD_URL_CACHE_TTL", 0)

	// Rate limits
	cfg.RateLimit.LoginPerMinute = getEnvInt("RATE_LIMIT_LOGIN_PER_MINUTE", 10)
	cfg.RateLimit.IngestPerMinute = getEnvInt("RATE_LIMIT_INGEST_PER_MINUTE", 60)

	cfg.IngestEnabled = getEnvBool("INGEST_ENABLED", true)
	cfg.DefaultOrgID = getEnv("DEFAULT_ORG_ID", "")

	return cfg
}

// MaxBytesForKind returns the byte-size ceiling for an asset kind. Unknown
// kinds fall back to the "other" ceiling.
func (c *Config) MaxBytesForKind(kind string) int64 {
	switch kind {
	case "image":
		return c.Upload.MaxImageBytes
	case "video":
		return c.Upload.MaxVideoBytes
	case "audio":
		return c.Upload.MaxAudioBytes
	default:
		return c.Upload.MaxOtherBytes
	}
}

// ContentTypeAllowed reports whether a MIME type is on the upload allowlist.
func (c *Config) ContentTypeAllowed(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range c.Upload.ContentTypeAllowlist {
		if ct == allowed {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
