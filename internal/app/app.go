package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vivancedata/site/internal/config"
	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/httpserver"
	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/logger"
	"github.com/vivancedata/site/internal/redis"
	"github.com/vivancedata/site/internal/site"
	redisstore "github.com/vivancedata/site/internal/store/redis"
	"github.com/vivancedata/site/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Content is loaded once; a bad file stops startup.
	loader := content.NewLoader(cfg.ContentFile)
	tables, err := loader.Load()
	if err != nil {
		loggerClient.Errorf("Failed to load content from %s: %v", loader.Source(), err)
		os.Exit(1)
	}
	loggerClient.Info("content loaded",
		logger.String("source", loader.Source()),
		logger.Int("team_members", len(tables.TeamMembers)),
		logger.Int("footer_columns", len(tables.FooterLinks)),
		logger.Int("questions", len(tables.Questions)))
	for _, tag := range tables.UnknownIcons() {
		loggerClient.Warn("unknown social icon, falling back to linkedin",
			logger.String("icon", tag))
	}

	var (
		redisClient *goredis.Client
		cache       site.Cache
		pageCache   deps.PageCache
	)
	if cfg.RedisEnabled() {
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		store := redisstore.NewPageStore(redisClient, cfg.PageCacheTTL)
		cache, pageCache = store, store
		loggerClient.Info("page cache enabled",
			logger.Duration("ttl", cfg.PageCacheTTL))
	} else {
		loggerClient.Info("page cache disabled, rendering per request")
	}

	renderer := site.NewRenderer(tables, cache, time.Now, loggerClient)

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		RequestTimeout: cfg.RequestTimeout,
		Tables:         tables,
		ContentSource:  loader.Source(),
		Renderer:       renderer,
		CacheMaxAge:    cfg.CacheMaxAge,
		RateLimit: deps.RateLimit{
			Burst:         cfg.RateBurst,
			RefillPerMin:  cfg.RateRefillPerMin,
			MaxEntries:    cfg.RateMaxEntries,
			IdleTTL:       cfg.RateIdleTTL,
			SweepInterval: cfg.RateSweepInterval,
		},
		PageCache: pageCache,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting site v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("site %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.closeRedis()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeRedis()

	a.logger.Info("✅ site stopped cleanly")
	_ = a.logger.Sync()
	return nil
}

func (a *App) closeRedis() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
		return
	}
	a.logger.Info("✅ Redis closed cleanly")
}
