// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/LerianStudio/condo-docs/components/manager/internal/adapters/rabbitmq"
	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/document"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/template"
	"github.com/LerianStudio/condo-docs/pkg/postgres"
	pkgRabbitmq "github.com/LerianStudio/condo-docs/pkg/rabbitmq"
	"github.com/LerianStudio/condo-docs/pkg/redis"
	"github.com/LerianStudio/condo-docs/pkg/storage"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	mongoDB "github.com/LerianStudio/lib-commons/v3/commons/mongo"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	libRabbitmq "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
	libRedis "github.com/LerianStudio/lib-commons/v3/commons/redis"
	"github.com/LerianStudio/lib-commons/v3/commons/zap"
)

// mongoResources holds MongoDB-related resources created during initialization.
type mongoResources struct {
	connection   *mongoDB.MongoConnection
	templateRepo *template.TemplateMongoDBRepository
	documentRepo *document.DocumentMongoDBRepository
}

// rabbitResources holds RabbitMQ-related resources created during initialization.
type rabbitResources struct {
	connection *libRabbitmq.RabbitMQConnection
	producer   *rabbitmq.ProducerRabbitMQRepository
}

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

// initStorage creates the S3-compatible client holding document PDFs.
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

// initMongoDB creates the template and document repositories and ensures their indexes.
func initMongoDB(cfg *Config, logger log.Logger) (*mongoResources, func(), error) {
	mongoSource := mongoConnectionString(cfg)

	maxPoolSize, _ := strconv.ParseUint(cfg.MongoMaxPoolSize, 10, 64)
	if maxPoolSize == 0 {
		maxPoolSize = constant.MongoDefaultMaxPoolSize
	}

	logger.Infof("MongoDB connecting to %s", pkg.RedactConnectionString(mongoSource))

	mongoConnection := &mongoDB.MongoConnection{
		ConnectionStringSource: mongoSource,
		Database:               cfg.MongoDBName,
		Logger:                 logger,
		MaxPoolSize:            maxPoolSize,
	}

	templateRepo, err := template.NewTemplateMongoDBRepository(mongoConnection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize template mongodb repository: %w", err)
	}

	documentRepo, err := document.NewDocumentMongoDBRepository(mongoConnection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize document mongodb repository: %w", err)
	}

	logger.Info("Ensuring MongoDB indexes exist for templates and documents...")

	ctx := pkg.ContextWithLogger(context.Background(), logger)

	if err = templateRepo.EnsureIndexes(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure template indexes: %w", err)
	}

	if err = documentRepo.EnsureIndexes(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure document indexes: %w", err)
	}

	cleanup := func() {
		if mongoConnection.DB != nil {
			logger.Info("Cleanup: disconnecting MongoDB")

			if disconnectErr := mongoConnection.DB.Disconnect(context.Background()); disconnectErr != nil {
				logger.Errorf("Cleanup: failed to disconnect MongoDB: %v", disconnectErr)
			}
		}
	}

	return &mongoResources{
		connection:   mongoConnection,
		templateRepo: templateRepo,
		documentRepo: documentRepo,
	}, cleanup, nil
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

// initRabbitMQ creates the batch producer and starts the connection monitor.
func initRabbitMQ(cfg *Config, logger log.Logger) (*rabbitResources, []func()) {
	rabbitSource := fmt.Sprintf("%s://%s:%s@%s:%s",
		cfg.RabbitURI, cfg.RabbitMQUser, url.QueryEscape(cfg.RabbitMQPass), cfg.RabbitMQHost, cfg.RabbitMQPortAMQP)

	logger.Infof("RabbitMQ connecting to %s", pkg.RedactConnectionString(rabbitSource))

	conn := &libRabbitmq.RabbitMQConnection{
		ConnectionStringSource: rabbitSource,
		HealthCheckURL:         cfg.RabbitMQHealthCheckURL,
		Host:                   cfg.RabbitMQHost,
		Port:                   cfg.RabbitMQPortHost,
		User:                   cfg.RabbitMQUser,
		Pass:                   cfg.RabbitMQPass,
		Queue:                  cfg.RabbitMQGenerateBatchQueue,
		Logger:                 logger,
	}

	producer := rabbitmq.NewProducerRabbitMQ(conn)

	monitor := pkgRabbitmq.NewConnectionMonitor(conn, logger)
	monitor.Start()

	logger.Info("RabbitMQ background connection monitor started")

	cleanups := []func(){
		func() {
			logger.Info("Cleanup: stopping RabbitMQ connection monitor")
			monitor.Stop()
		},
		func() {
			logger.Info("Cleanup: closing RabbitMQ connection")
			closeRabbitMQ(conn, logger)
		},
	}

	return &rabbitResources{connection: conn, producer: producer}, cleanups
}

// newRedisConnection maps the Redis settings onto a lazily connecting client.
func newRedisConnection(cfg *Config, logger log.Logger) *libRedis.RedisConnection {
	return &libRedis.RedisConnection{
		Address:    strings.Split(cfg.RedisHost, ","),
		Password:   cfg.RedisPassword,
		DB:         cfg.RedisDB,
		Protocol:   cfg.RedisProtocol,
		MasterName: cfg.RedisMasterName,
		UseTLS:     cfg.RedisTLS,
		CACert:     cfg.RedisCACert,
		Logger:     logger,
	}
}

// initRedis creates the batch status repository.
func initRedis(cfg *Config, logger log.Logger) (*redis.BatchRedisRepository, *libRedis.RedisConnection, func(), error) {
	conn := newRedisConnection(cfg, logger)

	batchRepo, err := redis.NewBatchRedisRepository(conn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize redis connection: %w", err)
	}

	cleanup := func() {
		logger.Info("Cleanup: closing Redis connection")

		if closeErr := conn.Close(); closeErr != nil {
			logger.Errorf("Cleanup: failed to close Redis connection: %v", closeErr)
		}
	}

	return batchRepo, conn, cleanup, nil
}
