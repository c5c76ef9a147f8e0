package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Zachkp/scroll-portfolio/internal/section"
)

const (
	defaultPort             = 8080
	defaultDBPath           = "portfolio.db"
	defaultSection          = section.Home
	defaultSessionCacheSize = 4096
	defaultRetentionMonths  = 12
	defaultAdminUsername    = "admin"
	defaultAdminPassword    = "admin123"
)

// Config captures startup settings for the portfolio server.
type Config struct {
	Port             int
	DBPath           string
	DefaultSection   section.Section
	AdminUsername    string
	AdminPassword    string
	CORSOrigins      []string
	SessionCacheSize int
	RetentionMonths  int
	TrackVisitors    bool

	// AdminDefaulted is set when either admin credential fell back to the
	// development default.
	AdminDefaulted bool
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	port, err := readInt("PORT", defaultPort, 1, 65535)
	if err != nil {
		return Config{}, err
	}

	dbPath, err := readRequiredOrDefault("DB_PATH", defaultDBPath)
	if err != nil {
		return Config{}, err
	}
	cleanDBPath := filepath.Clean(dbPath)
	if cleanDBPath == "." {
		return Config{}, fmt.Errorf("DB_PATH must not resolve to current directory")
	}

	rawSection, err := readRequiredOrDefault("DEFAULT_SECTION", string(defaultSection))
	if err != nil {
		return Config{}, err
	}
	start, ok := section.Parse(rawSection)
	if !ok {
		return Config{}, fmt.Errorf("DEFAULT_SECTION %q is not one of %v", rawSection, section.Order)
	}

	cacheSize, err := readInt("SESSION_CACHE_SIZE", defaultSessionCacheSize, 1, 1<<20)
	if err != nil {
		return Config{}, err
	}

	retention, err := readInt("RETENTION_MONTHS", defaultRetentionMonths, 1, 120)
	if err != nil {
		return Config{}, err
	}

	track, err := readBool("TRACK_VISITORS", true)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             port,
		DBPath:           cleanDBPath,
		DefaultSection:   start,
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:      readList("CORS_ORIGINS"),
		SessionCacheSize: cacheSize,
		RetentionMonths:  retention,
		TrackVisitors:    track,
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = defaultAdminUsername
		cfg.AdminDefaulted = true
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = defaultAdminPassword
		cfg.AdminDefaulted = true
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}

	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func readList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
