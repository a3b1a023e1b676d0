package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sjsage522/competitorshots/pkg/errors"
)

// DefaultUserAgent identifies requests as a common desktop browser
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config represents the application configuration
type Config struct {
	// Output configuration
	OutputRoot   string
	RegistryFile string

	// Download configuration
	MaxScreenshotsPerSource int
	RequestTimeout          time.Duration
	InterRequestDelay       time.Duration
	InterCompetitorDelay    time.Duration
	UserAgent               string

	// Memcache configuration, empty address disables rate-limit blocking
	MemcacheAddr   string
	RateLimitBlock time.Duration

	// Redis configuration, empty address disables run reports
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	maxScreenshots, _ := strconv.Atoi(getEnv("MAX_SCREENSHOTS_PER_SOURCE", "10"))
	requestTimeout, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "10"))
	requestDelay, _ := strconv.Atoi(getEnv("INTER_REQUEST_DELAY_MS", "1000"))
	competitorDelay, _ := strconv.Atoi(getEnv("INTER_COMPETITOR_DELAY_MS", "2000"))
	blockSeconds, _ := strconv.Atoi(getEnv("RATE_LIMIT_BLOCK_SECONDS", "300"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "1000"))

	return &Config{
		OutputRoot:              getEnv("OUTPUT_ROOT", defaultOutputRoot()),
		RegistryFile:            os.Getenv("REGISTRY_FILE"),
		MaxScreenshotsPerSource: maxScreenshots,
		RequestTimeout:          time.Duration(requestTimeout) * time.Second,
		InterRequestDelay:       time.Duration(requestDelay) * time.Millisecond,
		InterCompetitorDelay:    time.Duration(competitorDelay) * time.Millisecond,
		UserAgent:               getEnv("USER_AGENT", DefaultUserAgent),
		MemcacheAddr:            os.Getenv("MEMCACHE_ADDR"),
		RateLimitBlock:          time.Duration(blockSeconds) * time.Second,
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		RedisDB:                 redisDB,
		RedisStream:             getEnv("REDIS_STREAM", "screenshot_reports"),
		RedisStreamMaxLength:    streamMaxLength,
		Environment:             getEnv("SCREENSHOT_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.OutputRoot == "" {
		return errors.NewConfiguration("output root must not be empty", nil)
	}
	if c.MaxScreenshotsPerSource <= 0 {
		return errors.NewConfiguration("MAX_SCREENSHOTS_PER_SOURCE must be positive", nil)
	}
	if c.RequestTimeout <= 0 {
		return errors.NewConfiguration("REQUEST_TIMEOUT_SECONDS must be positive", nil)
	}
	if c.InterRequestDelay < 0 || c.InterCompetitorDelay < 0 {
		return errors.NewConfiguration("delays must not be negative", nil)
	}
	if c.RateLimitBlock <= 0 {
		return errors.NewConfiguration("RATE_LIMIT_BLOCK_SECONDS must be positive", nil)
	}
	if c.UserAgent == "" {
		return errors.NewConfiguration("USER_AGENT must not be empty", nil)
	}
	return nil
}

// defaultOutputRoot is the directory holding the running executable
func defaultOutputRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
