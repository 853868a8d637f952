package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ordemia/ordemia/pkg/extractor"
	"github.com/ordemia/ordemia/pkg/session"
	"github.com/ordemia/ordemia/pkg/session/memory"

	"golang.org/x/time/rate"
)

type Config struct {
	Address string

	MaxFiles    int
	MaxFileSize int64

	Concurrency int
	Timeout     time.Duration

	SessionTTL time.Duration

	Extractor extractor.Provider
	Sessions  session.Store

	limiter *rate.Limiter
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",

		MaxFiles:    50,
		MaxFileSize: 10 << 20,

		Concurrency: 4,
		Timeout:     2 * time.Minute,

		SessionTTL: time.Hour,

		Sessions: memory.New(),
	}

	if err := c.applyFile(file); err != nil {
		return nil, err
	}

	c.applyEnv()

	c.limiter = createLimiter(file.Limit)

	if err := c.registerExtractors(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (cfg *Config) applyFile(f *configFile) error {
	if f.Address != "" {
		cfg.Address = f.Address
	}

	if f.MaxFiles > 0 {
		cfg.MaxFiles = f.MaxFiles
	}

	if f.MaxFileSize > 0 {
		cfg.MaxFileSize = f.MaxFileSize << 20
	}

	if f.Concurrency > 0 {
		cfg.Concurrency = f.Concurrency
	}

	if f.Timeout > 0 {
		cfg.Timeout = time.Duration(f.Timeout) * time.Second
	}

	if f.SessionTTL > 0 {
		cfg.SessionTTL = time.Duration(f.SessionTTL) * time.Second
	}

	return nil
}

func (cfg *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Address = ":" + port
	}

	if address := os.Getenv("ADDRESS"); address != "" {
		cfg.Address = address
	}

	if val, err := strconv.Atoi(os.Getenv("MAX_FILES")); err == nil && val > 0 {
		cfg.MaxFiles = val
	}

	if val, err := strconv.ParseInt(os.Getenv("MAX_FILE_SIZE_MB"), 10, 64); err == nil && val > 0 {
		cfg.MaxFileSize = val << 20
	}

	if val, err := strconv.Atoi(os.Getenv("CONCURRENCY")); err == nil && val > 0 {
		cfg.Concurrency = val
	}

	if val, err := strconv.Atoi(os.Getenv("SESSION_TIMEOUT")); err == nil && val > 0 {
		cfg.SessionTTL = time.Duration(val) * time.Second
	}
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
