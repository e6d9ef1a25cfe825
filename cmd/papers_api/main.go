package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/paper-hunter/paper-hunter/internal/categories"
	"github.com/paper-hunter/paper-hunter/internal/credits"
	"github.com/paper-hunter/paper-hunter/internal/feed"
	"github.com/paper-hunter/paper-hunter/internal/llm"
	"github.com/paper-hunter/paper-hunter/internal/pg"
	"github.com/paper-hunter/paper-hunter/internal/router"
	"github.com/paper-hunter/paper-hunter/internal/search"
	"github.com/paper-hunter/paper-hunter/internal/server"
	"github.com/paper-hunter/paper-hunter/internal/simplify"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	creditStore, categoryStore, healthChecker := buildStores(cfg)

	e := echo.New()
	e.HideBanner = true
	s := server.NewServer(e, sCfg, healthChecker)

	cache := feed.NewMemoryCache(feed.WithTTL(cfg.FeedCacheTTL))
	fetcher := feed.NewFetcher(cache)
	searcher := search.NewSearcher(fetcher, []feed.Source{
		feed.NewArxivSource(),
		feed.NewBiorxivSource(),
		feed.NewMedrxivSource(),
	})

	router.NewPapersRouter(s.Echo, searcher).Bind()
	router.NewCategoriesRouter(s.Echo, categoryStore).Bind()
	router.NewCreditsRouter(s.Echo, creditStore).Bind()

	if cfg.OpenAIKey != "" {
		llmClient, err := llm.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			slog.Error("Failed to create completion client", "error", err)
			os.Exit(1)
		}
		simplifier := simplify.NewSimplifier(searcher, llmClient, creditStore)
		router.NewCompletionRouter(s.Echo, simplifier).Bind()
	} else {
		slog.Info("OPENAI_API_KEY not set, abstract simplification disabled")
	}

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func buildStores(cfg *PapersAPIConfig) (credits.Store, categories.Store, server.HealthChecker) {
	if cfg.DatabaseURL != "" {
		pool, err := pg.NewConnectionPool(context.Background(), pg.PoolConfig{ConnStr: cfg.DatabaseURL})
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		return credits.NewPgStore(pool.GetConn()), categories.NewPgStore(pool.GetConn()), pg.NewHealthChecker(pool)
	}

	slog.Info("DATABASE_URL not set, using in-memory credit ledger")
	creditStore := credits.NewMemoryStore()
	healthChecker := server.NewOkHealthChecker()

	if cfg.CategoriesFile != "" {
		fileStore, err := categories.NewFileStore(cfg.CategoriesFile)
		if err != nil {
			slog.Error("Failed to load categories file", "path", cfg.CategoriesFile, "error", err)
			os.Exit(1)
		}
		return creditStore, fileStore, healthChecker
	}

	slog.Info("CATEGORIES_FILE not set, category listing disabled")
	return creditStore, categories.EmptyStore{}, healthChecker
}
