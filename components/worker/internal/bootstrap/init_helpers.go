// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/document"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/template"
	"github.com/LerianStudio/condo-docs/pkg/pdf"
	"github.com/LerianStudio/condo-docs/pkg/pongo"
	"github.com/LerianStudio/condo-docs/pkg/postgres"
	"github.com/LerianStudio/condo-docs/pkg/redis"
	"github.com/LerianStudio/condo-docs/pkg/storage"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	mongoDB "github.com/LerianStudio/lib-commons/v3/commons/mongo"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	libRabbitmq "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
	libRedis "github.com/LerianStudio/lib-commons/v3/commons/redis"
	"github.com/LerianStudio/lib-commons/v3/commons/zap"
	"github.com/google/uuid"
)

// initConfigAndLogger loads configuration from environment variables, validates it,
// and initializes the structured logger.
func initConfigAndLogger() (*Config, log.Logger, error) {
	cfg := &Config{}
	if err := libCommons.SetConfigFromEnvVars(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to load config from env vars: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := zap.InitializeLoggerWithError()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger, nil
}

// initTelemetry initializes OpenTelemetry and returns a cleanup that shuts the providers down.
func initTelemetry(cfg *Config, logger log.Logger) (*libOtel.Telemetry, func(), error) {
	telemetry, err := libOtel.InitializeTelemetryWithError(&libOtel.TelemetryConfig{
		LibraryName:               cfg.OtelLibraryName,
		ServiceName:               cfg.OtelServiceName,
		ServiceVersion:            cfg.OtelServiceVersion,
		DeploymentEnv:             cfg.OtelDeploymentEnv,
		CollectorExporterEndpoint: cfg.OtelColExporterEndpoint,
		EnableTelemetry:           cfg.EnableTelemetry,
		Logger:                    logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	cleanup := func() {
		logger.Info("Cleanup: shutting down telemetry")
		telemetry.ShutdownTelemetry()
	}

	return telemetry, cleanup, nil
}

// initBatchMetrics registers the batch instruments on the telemetry meter provider,
// falling back to noop instruments when none is available.
func initBatchMetrics(cfg *Config, telemetry *libOtel.Telemetry, logger log.Logger) *batch.Metrics {
	if telemetry == nil || telemetry.MetricProvider == nil {
		logger.Info("Batch metrics: using noop instruments (no meter provider)")
		return batch.NoopMetrics()
	}

	m, err := batch.NewMetrics(telemetry.MetricProvider.Meter(cfg.OtelLibraryName))
	if err != nil {
		logger.Errorf("Failed to create batch metrics, falling back to noop: %v", err)
		return batch.NoopMetrics()
	}

	return m
}

// initStorage creates the S3-compatible client receiving document PDFs.
func initStorage(cfg *Config, logger log.Logger) (*storage.S3Client, error) {
	ctx := pkg.ContextWithLogger(context.Background(), logger)

	client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:        cfg.ObjectStorageEndpoint,
		Region:          cfg.ObjectStorageRegion,
		Bucket:          cfg.ObjectStorageBucket,
		AccessKeyID:     cfg.ObjectStorageAccessKeyID,
		SecretAccessKey: cfg.ObjectStorageSecretKey,
		UsePathStyle:    cfg.ObjectStorageUsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	logger.Infof("Storage initialized with bucket: %s", cfg.ObjectStorageBucket)

	return client, nil
}

// mongoConnectionString builds the MongoDB URI with an escaped password.
func mongoConnectionString(cfg *Config) string {
	source := fmt.Sprintf("%s://%s:%s@%s:%s",
		cfg.MongoURI, cfg.MongoDBUser, url.QueryEscape(cfg.MongoDBPassword), cfg.MongoDBHost, cfg.MongoDBPort)

	if cfg.MongoDBParameters != "" {
		source += "/?" + cfg.MongoDBParameters
	}

	return source
}

// initMongoDB creates the template reader and the document store. Indexes are
// owned by the manager.
func initMongoDB(cfg *Config, logger log.Logger) (*template.TemplateMongoDBRepository, *document.DocumentMongoDBRepository, func(), error) {
	mongoSource := mongoConnectionString(cfg)

	logger.Infof("MongoDB connecting to %s", pkg.RedactConnectionString(mongoSource))

	mongoConnection := &mongoDB.MongoConnection{
		ConnectionStringSource: mongoSource,
		Database:               cfg.MongoDBName,
		Logger:                 logger,
		MaxPoolSize:            uint64(cfg.MongoMaxPoolSize),
	}

	templateRepo, err := template.NewTemplateMongoDBRepository(mongoConnection)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize template mongodb repository: %w", err)
	}

	documentRepo, err := document.NewDocumentMongoDBRepository(mongoConnection)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize document mongodb repository: %w", err)
	}

	cleanup := func() {
		if mongoConnection.DB != nil {
			logger.Info("Cleanup: disconnecting MongoDB")

			if disconnectErr := mongoConnection.DB.Disconnect(context.Background()); disconnectErr != nil {
				logger.Errorf("Cleanup: failed to disconnect MongoDB: %v", disconnectErr)
			}
		}
	}

	return templateRepo, documentRepo, cleanup, nil
}

// directoryConnectionString builds the PostgreSQL DSN of the member directory.
func directoryConnectionString(cfg *Config) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DirectoryUser, cfg.DirectoryPassword),
		Host:     cfg.DirectoryHost + ":" + cfg.DirectoryPort,
		Path:     "/" + cfg.DirectoryName,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.DirectorySSLMode),
	}

	return dsn.String()
}

// initDirectory opens the read-only member directory.
func initDirectory(cfg *Config, logger log.Logger) (*postgres.DirectoryPostgreSQLRepository, func(), error) {
	dsn := directoryConnectionString(cfg)

	logger.Infof("PostgreSQL directory connecting to %s", pkg.RedactConnectionString(dsn))

	connection := &postgres.Connection{
		ConnectionString:   dsn,
		DBName:             cfg.DirectoryName,
		Logger:             logger,
		MaxOpenConnections: constant.PostgresMaxOpenConns,
		MaxIdleConnections: constant.PostgresMaxIdleConns,
	}

	directory, err := postgres.NewDirectoryRepository(connection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize directory repository: %w", err)
	}

	cleanup := func() {
		logger.Info("Cleanup: closing PostgreSQL directory")

		if closeErr := connection.Close(); closeErr != nil {
			logger.Errorf("Cleanup: failed to close PostgreSQL directory: %v", closeErr)
		}
	}

	return directory, cleanup, nil
}

// newRabbitMQConnection maps the RabbitMQ settings onto a consumer connection.
func newRabbitMQConnection(cfg *Config, logger log.Logger) *libRabbitmq.RabbitMQConnection {
	rabbitSource := fmt.Sprintf("%s://%s:%s@%s:%s",
		cfg.RabbitURI, cfg.RabbitMQUser, url.QueryEscape(cfg.RabbitMQPass), cfg.RabbitMQHost, cfg.RabbitMQPortAMQP)

	logger.Infof("RabbitMQ connecting to %s", pkg.RedactConnectionString(rabbitSource))

	return &libRabbitmq.RabbitMQConnection{
		ConnectionStringSource: rabbitSource,
		HealthCheckURL:         cfg.RabbitMQHealthCheckURL,
		Host:                   cfg.RabbitMQHost,
		Port:                   cfg.RabbitMQPortHost,
		User:                   cfg.RabbitMQUser,
		Pass:                   cfg.RabbitMQPass,
		Queue:                  cfg.RabbitMQGenerateBatchQueue,
		Logger:                 logger,
	}
}

// closeRabbitMQ closes the channel and connection, in that order.
func closeRabbitMQ(conn *libRabbitmq.RabbitMQConnection, logger log.Logger) {
	if conn.Channel != nil {
		if err := conn.Channel.Close(); err != nil {
			logger.Errorf("Cleanup: failed to close RabbitMQ channel: %v", err)
		}
	}

	if conn.Connection != nil && !conn.Connection.IsClosed() {
		if err := conn.Connection.Close(); err != nil {
			logger.Errorf("Cleanup: failed to close RabbitMQ connection: %v", err)
		}
	}
}

// initRedis creates the repository holding batch progress, cancellation flags and locks.
func initRedis(cfg *Config, logger log.Logger) (*redis.BatchRedisRepository, func(), error) {
	conn := &libRedis.RedisConnection{
		Address:    strings.Split(cfg.RedisHost, ","),
		Password:   cfg.RedisPassword,
		DB:         cfg.RedisDB,
		Protocol:   cfg.RedisProtocol,
		MasterName: cfg.RedisMasterName,
		UseTLS:     cfg.RedisTLS,
		CACert:     cfg.RedisCACert,
		Logger:     logger,
	}

	batchRepo, err := redis.NewBatchRedisRepository(conn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis connection: %w", err)
	}

	cleanup := func() {
		logger.Info("Cleanup: closing Redis connection")

		if closeErr := conn.Close(); closeErr != nil {
			logger.Errorf("Cleanup: failed to close Redis connection: %v", closeErr)
		}
	}

	return batchRepo, cleanup, nil
}

// initPDFPool starts the headless Chrome worker pool.
func initPDFPool(cfg *Config, logger log.Logger) (*pdf.WorkerPool, func()) {
	timeout := time.Duration(cfg.PdfPoolTimeoutSeconds) * time.Second

	pool := pdf.NewWorkerPool(cfg.PdfPoolWorkers, timeout, logger)

	logger.Infof("PDF pool started with %d workers and a %v timeout", cfg.PdfPoolWorkers, timeout)

	cleanup := func() {
		logger.Info("Cleanup: closing PDF pool")
		pool.Close()
	}

	return pool, cleanup
}

// loadPrintLayout compiles the print layout, read from PDF_LAYOUT_FILE when set.
func loadPrintLayout(cfg *Config) (*pongo.PrintLayout, error) {
	var layout string

	if cfg.PdfLayoutFile != "" {
		raw, err := os.ReadFile(cfg.PdfLayoutFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read print layout %s: %w", cfg.PdfLayoutFile, err)
		}

		layout = string(raw)
	}

	return pongo.NewPrintLayout(layout, cfg.DocumentLocale)
}

// workerOwner identifies this process in batch idempotency locks.
func workerOwner() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = constant.ApplicationName + "-worker"
	}

	return host + "-" + uuid.NewString()[:8]
}
