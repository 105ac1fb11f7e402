// Package application assembles the service: config, connectors, domain
// services and the listener modules.
package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"dri_index/internal/config"
	"dri_index/internal/domain/service/catalog"
	"dri_index/internal/domain/service/company"
	"dri_index/internal/infrastructure/cache"
	"dri_index/internal/infrastructure/catalogcsv"
	"dri_index/internal/infrastructure/chat"
	"dri_index/internal/infrastructure/persistence"
	"dri_index/internal/server"
	"dri_index/internal/worker"
	"dri_index/pkg/application/connectors"
	"dri_index/pkg/application/modules"
	"dri_index/pkg/logx"
	"dri_index/pkg/middlewarex"
)

const (
	serviceName             = "dri-index"
	httpReadHeaderTimeout   = 5 * time.Second
	transcriptQueue         = "default"
	transcriptQueuePriority = 1
)

func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db.Ping: %w", err)
	}

	companyRepo := persistence.NewCompanyRepository(db)
	feedbackRepo := persistence.NewFeedbackRepository(db)

	definitions, err := catalogcsv.LoadFirst(cfg.Catalog.CSVPaths...)
	if err != nil {
		return fmt.Errorf("catalogcsv.LoadFirst: %w", err)
	}
	cat := catalog.New(definitions)

	logger(ctx).Info("catalog loaded", "indicators", cat.Len())

	companyService := company.NewService(companyRepo, cat)

	var transcripts *worker.TranscriptEnqueuer

	if cfg.Redis.Enabled() {
		rd := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer rd.Close(ctx)

		scorecards := cache.NewScorecardCache(rd.Client(ctx), cfg.Redis.ScorecardTTL)
		companyService = companyService.WithScorecardCache(scorecards)

		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DatabaseNumber,
		})
		defer asynqClient.Close() //nolint:errcheck

		transcripts = worker.NewTranscriptEnqueuer(asynqClient)
	}

	chatConfig := chat.Config{
		APIKey:       cfg.Chat.APIKey,
		BaseURL:      cfg.Chat.BaseURL,
		Model:        cfg.Chat.Model,
		Temperature:  cfg.Chat.Temperature,
		MaxTokens:    cfg.Chat.MaxTokens,
		SystemPrompt: cfg.Chat.SystemPrompt,
	}
	relay := chat.NewRelay(chatConfig)

	// A typed nil enqueuer must not reach the server, it checks for nil
	// through the interface.
	chatServer := server.NewChatServer(relay, nil)
	if transcripts != nil {
		chatServer = server.NewChatServer(relay, transcripts)
	}

	srv := server.NewServer(
		server.NewCompanyServer(companyService),
		server.NewCatalogServer(cat),
		chatServer,
		server.NewFeedbackServer(feedbackRepo),
		server.NewBadgeServer(companyService),
		server.NewHealthServer(chatConfig.Configured(), true),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router, cfg.Server.AdminToken)

	g, gctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return gctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(gctx, g, httpServer)
	modules.ProbeServer{
		Name:          serviceName,
		Version:       cfg.Server.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(gctx, g)
	modules.MetricServer{ListenAddress: cfg.Server.MetricListenAddress}.Run(gctx, g)

	if cfg.Redis.Enabled() {
		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}.Run(gctx, g,
			modules.AsynqQueues{transcriptQueue: transcriptQueuePriority},
			modules.AsynqHandler{
				Pattern: worker.TypeChatTranscript,
				Handle:  worker.NewTranscriptWriter(feedbackRepo).Handle,
			},
		)
	}

	warmer := worker.NewLeaderboardWarmer(companyService).
		WithInterval(cfg.Worker.LeaderboardWarmInterval)

	g.Go(func() error {
		if err := warmer.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("warmer.Run: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
