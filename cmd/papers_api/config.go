package main

import (
	"fmt"
	"os"
	"time"

	"github.com/paper-hunter/paper-hunter/internal/feed"
	"github.com/paper-hunter/paper-hunter/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type PapersAPIConfig struct {
	// DatabaseURL enables the Postgres-backed credit ledger and category
	// store. When empty, in-memory/file fallbacks are used.
	DatabaseURL string

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	CategoriesFile string

	FeedCacheTTL time.Duration
}

func (as *AppConfig) Load() (*PapersAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/papers_api/.env")
	if err != nil {
		return nil, err
	}

	cfg := &PapersAPIConfig{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		CategoriesFile: os.Getenv("CATEGORIES_FILE"),
		FeedCacheTTL:   feed.DefaultCacheTTL,
	}

	if raw := os.Getenv("FEED_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FEED_CACHE_TTL: %w", err)
		}
		cfg.FeedCacheTTL = ttl
	}

	return cfg, nil
}
