// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"]. Set CORS_ORIGINS to a
	// comma-separated list to override.
	CORSOrigins []string

	// SiteConfig is the optional path of the YAML site settings file.
	SiteConfig string

	// DataPath overrides the data file location from the site settings.
	DataPath string

	// DatabaseURL, when set, makes the clubs table in Postgres the record
	// source instead of the data file.
	DatabaseURL string

	// Collation is the language whose collation orders names and schools.
	// Defaults to Korean ("ko").
	Collation language.Tag

	// Location defines local midnight for deadline arithmetic.
	// Defaults to the process's local time zone.
	Location *time.Location

	// SessionLimit bounds the number of live browsing sessions. Defaults to 1000.
	SessionLimit int

	// Clock returns "now" for deadline arithmetic. Load leaves it nil,
	// which means the wall clock in Location; the CLI pins it for --as-of.
	Clock func() time.Time
}

// Load reads an optional .env file, then configuration from environment
// variables. Variables already set in the environment win over .env.
// Returns an error listing every variable with an invalid value.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		SiteConfig:  os.Getenv("SITE_CONFIG"),
		DataPath:    os.Getenv("DATA_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var invalid []string

	tag, err := language.Parse(getEnv("COLLATION", "ko"))
	if err != nil {
		invalid = append(invalid, "COLLATION")
	}
	cfg.Collation = tag

	cfg.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			invalid = append(invalid, "TIMEZONE")
		}
		cfg.Location = loc
	}

	limit, err := strconv.Atoi(getEnv("SESSION_LIMIT", "1000"))
	if err != nil || limit < 1 {
		invalid = append(invalid, "SESSION_LIMIT")
	}
	cfg.SessionLimit = limit

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// Now returns the current time per Clock, or the wall clock in Location.
func (c Config) Now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
