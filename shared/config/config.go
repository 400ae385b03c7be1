// shared/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the stream-manager service reads from the
// environment. A .env file in the working directory is honored for local
// development.
type Config struct {
	ListenAddr  string
	ServiceIP   string // advertised for instance registration
	ServicePort int

	MongoDBConnStr     string
	MongoDBDatabase    string
	SessionsCollection string
	TeamsCollection    string

	// HTTP timeouts. The write timeout must leave room for a full-size
	// logo upload on a slow link.
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration

	RedisAddr     string
	RedisPassword string

	// SessionCacheTTL bounds how stale an overlay poll may render; it
	// should stay at or below the overlay poll interval.
	SessionCacheTTL time.Duration

	UploadsDir      string
	UploadMaxBytes  int64
	UploadTTL       time.Duration
	CleanupInterval time.Duration

	HeartbeatInterval       time.Duration
	HeartbeatTTL            time.Duration
	RegistryCleanupInterval time.Duration

	// PublicBaseURL is baked into the generated WebDeck scripts.
	PublicBaseURL string

	StartGGAPIToken string
}

// Load reads the service configuration from environment variables,
// applying defaults suitable for a local single-instance deployment.
func Load() (*Config, error) {
	// Best effort; production sets real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:         getString("STREAM_MANAGER_LISTEN_ADDR", ":8080"),
		MongoDBConnStr:     getString("MONGODB_CONN_STR", "mongodb://localhost:27017"),
		MongoDBDatabase:    getString("MONGODB_DATABASE", "stream_manager"),
		SessionsCollection: getString("MONGODB_SESSIONS_COLLECTION", "sessions"),
		TeamsCollection:    getString("MONGODB_TEAMS_COLLECTION", "teams"),
		RedisAddr:          getString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		UploadsDir:         getString("UPLOADS_DIR", "uploads"),
		PublicBaseURL:      getString("PUBLIC_BASE_URL", "http://localhost:8080"),
		StartGGAPIToken:    os.Getenv("STARTGG_API_TOKEN"),
	}

	var err error
	if cfg.HTTPReadTimeout, err = getDuration("HTTP_READ_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPWriteTimeout, err = getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionCacheTTL, err = getDuration("SESSION_CACHE_TTL", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.UploadTTL, err = getDuration("UPLOAD_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getDuration("UPLOAD_CLEANUP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.HeartbeatInterval, err = getDuration("SERVICE_HEARTBEAT_INTERVAL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.HeartbeatTTL, err = getDuration("SERVICE_HEARTBEAT_TTL", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.RegistryCleanupInterval, err = getDuration("SERVICE_REGISTRY_CLEANUP_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.UploadMaxBytes, err = getInt64("UPLOAD_MAX_BYTES", 5*1024*1024); err != nil {
		return nil, err
	}

	cfg.ServiceIP = os.Getenv("POD_IP")
	if cfg.ServiceIP == "" {
		cfg.ServiceIP = "0.0.0.0"
	}
	if cfg.ServicePort, err = extractPort(cfg.ListenAddr); err != nil {
		return nil, fmt.Errorf("failed to extract port from STREAM_MANAGER_LISTEN_ADDR %q: %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

func getString(envKey, defaultVal string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultVal
}

func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

func getInt64(envKey string, defaultVal int64) (int64, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	i, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer format for %s: %w", envKey, err)
	}
	return i, nil
}

// extractPort extracts the numeric port from a listen address
// (":8080" -> 8080, "0.0.0.0:8080" -> 8080).
func extractPort(listenAddr string) (int, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		if strings.HasPrefix(listenAddr, ":") {
			portStr = strings.TrimPrefix(listenAddr, ":")
		} else {
			return 0, fmt.Errorf("invalid listen address for port extraction: %w", err)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number %q: %w", portStr, err)
	}
	return port, nil
}
