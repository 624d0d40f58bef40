package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/match-analyst/external/crset"
	"github.com/riskibarqy/match-analyst/external/footballapi"
	"github.com/riskibarqy/match-analyst/external/newsapi"
	"github.com/riskibarqy/match-analyst/internal/config"
	"github.com/riskibarqy/match-analyst/internal/domain/analysis"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/domain/news"
	"github.com/riskibarqy/match-analyst/internal/domain/standing"
	"github.com/riskibarqy/match-analyst/internal/infrastructure/loader"
	repocache "github.com/riskibarqy/match-analyst/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/match-analyst/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-analyst/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-analyst/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/match-analyst/internal/platform/cache"
	idgen "github.com/riskibarqy/match-analyst/internal/platform/id"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/riskibarqy/match-analyst/internal/platform/resilience"
	"github.com/riskibarqy/match-analyst/internal/usecase"
)

const redisPingTimeout = 3 * time.Second

// NewHTTPServer wires the match source, lookup clients and services behind
// the HTTP router. The returned cleanup closes the database and Redis
// connections it opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func() error
	cleanup := func() error {
		var firstErr error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	corpusLoader := loader.New(cfg.DataBasePath, logger.Named("loader"))

	var archiveRepo *postgres.MatchRepository
	if cfg.ArchiveEnabled() {
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, db.Close)
		archiveRepo = postgres.NewMatchRepository(db)
	}

	var source match.Source
	switch cfg.MatchSource {
	case config.MatchSourcePostgres:
		source = archiveRepo
	case config.MatchSourceMemory:
		source = memory.NewMatchRepository(memory.SeedMatches())
	default:
		source = loader.NewSource(corpusLoader, cfg.DataBasePath)
	}

	lookupBackend, err := newLookupBackend(ctx, cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	if closer, ok := lookupBackend.(interface{ Close() error }); ok {
		closers = append(closers, closer.Close)
	}

	var invalidator usecase.Invalidator
	if cfg.CacheEnabled {
		cached := repocache.NewMatchSource(source, basecache.NewStore(cfg.CacheTTL))
		source = cached
		invalidator = cached
	}

	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ExternalCircuitEnabled,
		FailureThreshold: cfg.ExternalCircuitFailureCount,
		OpenTimeout:      cfg.ExternalCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.ExternalCircuitHalfOpenMaxReq,
	}

	var newsSearcher news.Searcher = newsapi.NewClient(newsapi.ClientConfig{
		BaseURL:        cfg.NewsAPIURL,
		Timeout:        cfg.ExternalTimeout,
		MaxRetries:     cfg.ExternalMaxRetries,
		Logger:         logger.Named("newsapi"),
		CircuitBreaker: breaker,
	})
	var standingProvider standing.Provider = crset.NewClient(crset.ClientConfig{
		BaseURL:        cfg.StandingsAPIURL,
		Timeout:        cfg.ExternalTimeout,
		MaxRetries:     cfg.ExternalMaxRetries,
		Logger:         logger.Named("crset"),
		CircuitBreaker: breaker,
	})
	fixtureProvider := footballapi.NewClient(footballapi.ClientConfig{
		BaseURL:        cfg.FixturesAPIURL,
		Timeout:        cfg.ExternalTimeout,
		MaxRetries:     cfg.ExternalMaxRetries,
		Logger:         logger.Named("footballapi"),
		CircuitBreaker: breaker,
	})
	if lookupBackend != nil {
		newsSearcher = repocache.NewNewsSearcher(newsSearcher, lookupBackend, cfg.CacheTTL, logger)
		standingProvider = repocache.NewStandingProvider(standingProvider, lookupBackend, cfg.CacheTTL, logger)
	}

	analyzer := analysis.NewAnalyzer(analysis.MatcherForMode(cfg.TeamMatchMode))
	analysisSvc := usecase.NewAnalysisService(source, analyzer, logger)
	reportSvc := usecase.NewReportService(analysisSvc, newsSearcher)
	lookupSvc := usecase.NewLookupService(newsSearcher, standingProvider, fixtureProvider)
	reloadSvc := usecase.NewReloadService(invalidator, source, logger)

	var archiveSvc *usecase.ArchiveService
	if archiveRepo != nil {
		archiveSvc = usecase.NewArchiveService(
			corpusLoader,
			archiveRepo,
			idgen.NewUUIDGenerator(),
			cfg.ArchiveWorkers,
			logger.Named("archive"),
		)
	}

	handler := httpapi.NewHandler(analysisSvc, reportSvc, lookupSvc, archiveSvc, reloadSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	logger.Info("application wired",
		"match_source", cfg.MatchSource,
		"team_match_mode", cfg.TeamMatchMode,
		"cache_enabled", cfg.CacheEnabled,
		"redis_enabled", cfg.RedisURL != "",
		"archive_enabled", archiveSvc != nil,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, cleanup, nil
}

// newLookupBackend picks where encoded lookup results are cached. It returns
// nil when caching is disabled. An unreachable Redis falls back to the
// in-process store.
func newLookupBackend(ctx context.Context, cfg config.Config, logger *logging.Logger) (basecache.Backend, error) {
	if !cfg.CacheEnabled {
		return nil, nil
	}
	if cfg.RedisURL == "" {
		return basecache.NewStore(cfg.CacheTTL), nil
	}

	store, err := basecache.NewRedisStoreFromURL(cfg.RedisURL, cfg.RedisKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("configure redis cache: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable, using in-process lookup cache", "error", err)
		_ = store.Close()
		return basecache.NewStore(cfg.CacheTTL), nil
	}
	return store, nil
}
