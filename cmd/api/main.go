package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/infrastructure/cache"
	"github.com/vfg2006/vendorhub-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore"
	"github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/salesstoreclient"
	"github.com/vfg2006/vendorhub-api/infrastructure/repository"
	"github.com/vfg2006/vendorhub-api/internal/api"
	"github.com/vfg2006/vendorhub-api/internal/config"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/scheduler"
	"github.com/vfg2006/vendorhub-api/internal/usecases/aggregating"
	"github.com/vfg2006/vendorhub-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendorhub-api/internal/usecases/lending"
	"github.com/vfg2006/vendorhub-api/internal/usecases/selling"
	"github.com/vfg2006/vendorhub-api/internal/usecases/supporting"
	"github.com/vfg2006/vendorhub-api/pkg/middleware"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações do PostgreSQL")
		}
	}

	summaryCache, closeCache := summaryCache(ctx, cfg.Cache)
	defer closeCache()

	catalog := i18n.Default()
	engine := aggregating.NewEngine(cfg.Policy.MetricsPolicy())

	storeClient := salesstoreclient.NewClient(cfg)
	storeIntegrator := salesstore.New(storeClient)

	loanRepo := repository.NewLoanApplicationRepository(pgConn)
	supportRepo := repository.NewSupportRequestRepository(pgConn)

	authenticator := authenticating.NewService(cfg)
	sellingService := selling.NewService(storeIntegrator, summaryCache, cfg.Cache.SummaryTTL(), engine, catalog)
	lendingService := lending.NewService(loanRepo, sellingService, engine)
	supportService := supporting.NewService(supportRepo)

	upstreamHealthService := scheduler.NewUpstreamHealthService(storeIntegrator, cfg)
	if err := upstreamHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação de saúde do Sales Entry Store")
	} else {
		logrus.Info("Verificação de saúde do Sales Entry Store iniciada com sucesso")
	}

	salesLimiter := middleware.NewRateLimiter(cfg.RateLimit.SalesWritesPerMinute, time.Minute)
	defer salesLimiter.Stop()

	publicLimiter := middleware.NewRateLimiter(cfg.RateLimit.PublicRequestsPerMinute, time.Minute)
	defer publicLimiter.Stop()

	server, err := api.New(cfg, catalog, api.Services{
		Authenticator:  authenticator,
		Seller:         sellingService,
		Lender:         lendingService,
		Supporter:      supportService,
		UpstreamHealth: upstreamHealthService,
		SalesLimiter:   salesLimiter,
		PublicLimiter:  publicLimiter,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// summaryCache usa o Redis quando configurado; sem ele, ou se ele não responder, segue sem cache
func summaryCache(ctx context.Context, cacheConfig config.Cache) (cache.SummaryCache, func()) {
	if !cacheConfig.Enabled() {
		logrus.Info("Cache de resumos desabilitado")
		return cache.NoopSummaryCache{}, func() {}
	}

	redisCache := cache.NewRedisSummaryCache(cacheConfig.RedisAddr, cacheConfig.RedisPassword, cacheConfig.RedisDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := redisCache.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de resumos")
		_ = redisCache.Close()
		return cache.NoopSummaryCache{}, func() {}
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return redisCache, func() { _ = redisCache.Close() }
}
