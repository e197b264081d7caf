// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"
	"time"

	"github.com/LerianStudio/condo-docs/components/manager/internal/adapters/http/in"
	"github.com/LerianStudio/condo-docs/components/manager/internal/services"
	"github.com/LerianStudio/condo-docs/pkg/resolver"

	"go.opentelemetry.io/otel"
)

// InitServers wires every dependency of the manager. On failure the resources
// created so far are released before the error is returned.
func InitServers() (_ *Service, err error) {
	cfg, logger, err := initConfigAndLogger()
	if err != nil {
		return nil, err
	}

	var cleanups []func()

	defer func() {
		if err != nil {
			runCleanups(cleanups)
		}
	}()

	_, telemetryCleanup, err := initTelemetry(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, telemetryCleanup)

	storageClient, err := initStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	mongo, mongoCleanup, err := initMongoDB(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, mongoCleanup)

	directory, directoryCleanup, err := initDirectory(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, directoryCleanup)

	rabbit, rabbitCleanups := initRabbitMQ(cfg, logger)
	cleanups = append(cleanups, rabbitCleanups...)

	batchRepo, redisConnection, redisCleanup, err := initRedis(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, redisCleanup)

	useCase := &services.UseCase{
		TemplateRepo: mongo.templateRepo,
		DocumentRepo: mongo.documentRepo,
		Directory:    directory,
		Resolver:     resolver.New(directory, cfg.DocumentLocale),
		BatchRepo:    batchRepo,
		RabbitMQRepo: rabbit.producer,
		Storage:      storageClient,
		Exchange:     cfg.RabbitMQExchange,
		RoutingKey:   cfg.RabbitMQGenerateBatchKey,
	}

	handlers, err := newHandlers(useCase)
	if err != nil {
		return nil, err
	}

	rateLimit := in.RateLimitConfig{
		Enabled:     cfg.RateLimitEnabled,
		GlobalMax:   cfg.RateLimitGlobal,
		DownloadMax: cfg.RateLimitDownload,
		WriteMax:    cfg.RateLimitWrite,
		Window:      time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	}

	if cfg.RateLimitUseRedis {
		rateLimit.Storage = in.NewRedisStorage(redisConnection, logger)

		logger.Info("Rate limit counters stored in Redis")
	}

	httpApp := in.NewRoutes(logger, otel.Tracer(cfg.OtelLibraryName), handlers, in.RouteConfig{
		Version:   cfg.Version,
		RateLimit: rateLimit,
		CORS: in.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: cfg.CORSAllowedMethods,
			AllowedHeaders: cfg.CORSAllowedHeaders,
		},
	}, &in.ReadinessDeps{
		MongoConnection:    mongo.connection,
		RabbitMQConnection: rabbit.connection,
		RedisConnection:    redisConnection,
		StorageClient:      storageClient,
	})

	return &Service{
		Server:   NewServer(cfg, httpApp, logger),
		Logger:   logger,
		cleanups: cleanups,
	}, nil
}

func newHandlers(useCase *services.UseCase) (in.Handlers, error) {
	templateHandler, err := in.NewTemplateHandler(useCase)
	if err != nil {
		return in.Handlers{}, fmt.Errorf("failed to create template handler: %w", err)
	}

	documentTypeHandler, err := in.NewDocumentTypeHandler(useCase)
	if err != nil {
		return in.Handlers{}, fmt.Errorf("failed to create document type handler: %w", err)
	}

	batchHandler, err := in.NewBatchHandler(useCase)
	if err != nil {
		return in.Handlers{}, fmt.Errorf("failed to create batch handler: %w", err)
	}

	documentHandler, err := in.NewDocumentHandler(useCase)
	if err != nil {
		return in.Handlers{}, fmt.Errorf("failed to create document handler: %w", err)
	}

	return in.Handlers{
		Template:     templateHandler,
		DocumentType: documentTypeHandler,
		Batch:        batchHandler,
		Document:     documentHandler,
	}, nil
}
