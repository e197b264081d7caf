// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"

	"github.com/LerianStudio/condo-docs/components/worker/internal/adapters/rabbitmq"
	"github.com/LerianStudio/condo-docs/components/worker/internal/services"
	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	pkgRabbitmq "github.com/LerianStudio/condo-docs/pkg/rabbitmq"
	"github.com/LerianStudio/condo-docs/pkg/resolver"

	"go.opentelemetry.io/otel"
)

// InitWorker initializes the consumer, its dependencies and the health server.
// Resources opened before a failure are released before returning.
func InitWorker() (_ *Service, err error) {
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

	telemetry, telemetryCleanup, err := initTelemetry(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, telemetryCleanup)

	objectStorage, err := initStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	templateRepo, documentRepo, mongoCleanup, err := initMongoDB(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, mongoCleanup)

	directory, directoryCleanup, err := initDirectory(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, directoryCleanup)

	batchRepo, redisCleanup, err := initRedis(cfg, logger)
	if err != nil {
		return nil, err
	}

	cleanups = append(cleanups, redisCleanup)

	layout, err := loadPrintLayout(cfg)
	if err != nil {
		return nil, err
	}

	pool, poolCleanup := initPDFPool(cfg, logger)
	cleanups = append(cleanups, poolCleanup)

	breakers := pkg.NewCircuitBreakerManager(logger)

	generator := batch.NewGenerator(
		resolver.New(directory, cfg.DocumentLocale),
		documentRepo,
		batch.Config{Interval: cfg.BatchInterval(), Burst: constant.DefaultBatchBurst},
	)
	generator.Breakers = breakers
	generator.Metrics = initBatchMetrics(cfg, telemetry, logger)
	generator.PostProcessor = &services.DocumentPDFProcessor{
		Layout:   layout,
		Renderer: pool,
		Storage:  objectStorage,
		Breakers: breakers,
	}

	useCase := &services.UseCase{
		TemplateRepo: templateRepo,
		BatchRepo:    batchRepo,
		Generator:    generator,
		Owner:        workerOwner(),
	}

	rabbitConnection := newRabbitMQConnection(cfg, logger)

	routes, err := rabbitmq.NewConsumerRoutes(rabbitConnection, cfg.RabbitMQNumWorkers, logger, otel.Tracer(cfg.OtelLibraryName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rabbitmq consumer: %w", err)
	}

	monitor := pkgRabbitmq.NewConnectionMonitor(rabbitConnection, logger)
	monitor.Start()

	cleanups = append(cleanups,
		func() {
			logger.Info("Cleanup: closing RabbitMQ connection")
			closeRabbitMQ(rabbitConnection, logger)
		},
		func() {
			logger.Info("Cleanup: stopping RabbitMQ connection monitor")
			monitor.Stop()
		},
	)

	consumer := NewMultiQueueConsumer(routes, useCase, cfg.RabbitMQGenerateBatchQueue, logger)

	healthServer := NewHealthServer(cfg.HealthPort, rabbitConnection, batchRepo, pool, logger)

	logger.Infof("Worker %s ready to consume %s", useCase.Owner, cfg.RabbitMQGenerateBatchQueue)

	return &Service{
		MultiQueueConsumer: consumer,
		Logger:             logger,
		healthServer:       healthServer,
		cleanups:           cleanups,
	}, nil
}
