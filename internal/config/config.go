package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Base directory; the site is written to <Directory>/doc-site.
	Directory string

	// Summary file produced by the extraction step (.json, .yaml or .yml).
	SummaryPath string

	// Page chrome
	Title     string
	Heading   string
	IntroPath string

	// Preview server
	Port        string
	ReadTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Directory:   envOr("DOCSITE_DIR", "."),
		SummaryPath: envOr("DOCSITE_SUMMARY", "summary.json"),

		Title:     envOr("DOCSITE_TITLE", "Hello world"),
		Heading:   envOr("DOCSITE_HEADING", "uiua-essentials"),
		IntroPath: os.Getenv("DOCSITE_INTRO"),

		Port:        envOr("DOCSITE_PORT", "8090"),
		ReadTimeout: envDuration("DOCSITE_READ_TIMEOUT", 30*time.Second),
	}

	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 30 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("DOCSITE_DIR is required")
	}
	if c.SummaryPath == "" {
		return fmt.Errorf("DOCSITE_SUMMARY is required")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("DOCSITE_PORT must be a port number, got %q", c.Port)
	}
	return nil
}

// Intro reads the optional intro Markdown. An unset path yields "".
func (c Config) Intro() (string, error) {
	if c.IntroPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.IntroPath)
	if err != nil {
		return "", fmt.Errorf("read intro %s: %w", c.IntroPath, err)
	}
	return string(data), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
