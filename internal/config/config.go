package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kozaktomas/beauty-advisor/internal/constants"
)

type Config struct {
	Landmarks LandmarkConfig
	Database  DatabaseConfig
	Web       WebConfig
	Capture   CaptureConfig
	Log       LogConfig
}

type LandmarkConfig struct {
	URL     string        // face mesh sidecar, defaults to http://localhost:8000
	Timeout time.Duration // per-request timeout
}

type DatabaseConfig struct {
	URL          string // PostgreSQL connection URL, history is disabled when empty
	MaxOpenConns int    // Maximum open connections (default 25)
	MaxIdleConns int    // Maximum idle connections (default 5)
}

type WebConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string // extra CORS origins besides localhost
}

type CaptureConfig struct {
	Device    string        // V4L2 device path
	Countdown time.Duration // pause before the final frame is grabbed
}

type LogConfig struct {
	Level  string // logrus level name
	Format string // "text" or "json"
	File   string // rotated log file, stderr only when empty
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envSeconds reads a non-negative number of seconds, so 0 can switch a
// delay off. Unset, empty, negative or invalid values yield defaultVal.
func envSeconds(key string, defaultVal time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return defaultVal
}

// envString reads an environment variable, falling back to defaultVal when unset.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envList splits a comma-separated environment variable.
func envList(key string) []string {
	var out []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func Load() *Config {
	return &Config{
		Landmarks: LandmarkConfig{
			URL:     os.Getenv("LANDMARK_URL"),
			Timeout: time.Duration(envInt("LANDMARK_TIMEOUT_SEC", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Web: WebConfig{
			Host:           envString("WEB_HOST", "0.0.0.0"),
			Port:           envInt("WEB_PORT", 8080),
			AllowedOrigins: envList("WEB_ALLOWED_ORIGINS"),
		},
		Capture: CaptureConfig{
			Device:    envString("CAPTURE_DEVICE", constants.DefaultCaptureDevice),
			Countdown: envSeconds("CAPTURE_COUNTDOWN_SEC", constants.DefaultCountdown),
		},
		Log: LogConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Format: envString("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
	}
}

// HistoryEnabled reports whether analyses should be persisted.
func (c *Config) HistoryEnabled() bool {
	return c.Database.URL != ""
}
