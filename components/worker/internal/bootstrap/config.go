// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"
)

const (
	defaultHealthPort       = "4006"
	pdfPoolWorkersMax       = 32
	pdfTimeoutSecondsMax    = 600
	consumerWorkersMax      = 64
	batchIntervalMillisMax  = 60000
	defaultPdfTimeoutSecond = 90
)

// Config holds the application's configurable parameters read from environment variables.
type Config struct {
	EnvName  string `env:"ENV_NAME"`
	LogLevel string `env:"LOG_LEVEL"`
	// Locale drives date and currency formatting of resolved variables.
	DocumentLocale string `env:"DOCUMENT_LOCALE"`
	HealthPort     string `env:"HEALTH_PORT"`
	// OpenTelemetry
	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME"`
	OtelServiceVersion      string `env:"OTEL_RESOURCE_SERVICE_VERSION"`
	OtelDeploymentEnv       string `env:"OTEL_RESOURCE_DEPLOYMENT_ENVIRONMENT"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	EnableTelemetry         bool   `env:"ENABLE_TELEMETRY"`
	// RabbitMQ
	RabbitURI                  string `env:"RABBITMQ_URI"`
	RabbitMQHost               string `env:"RABBITMQ_HOST"`
	RabbitMQPortHost           string `env:"RABBITMQ_PORT_HOST"`
	RabbitMQPortAMQP           string `env:"RABBITMQ_PORT_AMQP"`
	RabbitMQUser               string `env:"RABBITMQ_DEFAULT_USER"`
	RabbitMQPass               string `env:"RABBITMQ_DEFAULT_PASS"`
	RabbitMQGenerateBatchQueue string `env:"RABBITMQ_GENERATE_BATCH_QUEUE"`
	RabbitMQNumWorkers         int    `env:"RABBITMQ_NUMBERS_OF_WORKERS"`
	RabbitMQHealthCheckURL     string `env:"RABBITMQ_HEALTH_CHECK_URL"`
	// MongoDB
	MongoURI          string `env:"MONGO_URI"`
	MongoDBHost       string `env:"MONGO_HOST"`
	MongoDBName       string `env:"MONGO_NAME"`
	MongoDBUser       string `env:"MONGO_USER"`
	MongoDBPassword   string `env:"MONGO_PASSWORD"`
	MongoDBPort       string `env:"MONGO_PORT"`
	MongoDBParameters string `env:"MONGO_PARAMETERS"`
	MongoMaxPoolSize  int    `env:"MONGO_MAX_POOL_SIZE"`
	// PostgreSQL member directory
	DirectoryHost     string `env:"DIRECTORY_DB_HOST"`
	DirectoryPort     string `env:"DIRECTORY_DB_PORT"`
	DirectoryUser     string `env:"DIRECTORY_DB_USER"`
	DirectoryPassword string `env:"DIRECTORY_DB_PASSWORD"`
	DirectoryName     string `env:"DIRECTORY_DB_NAME"`
	DirectorySSLMode  string `env:"DIRECTORY_DB_SSL_MODE"`
	// Redis
	RedisHost       string `env:"REDIS_HOST"`
	RedisMasterName string `env:"REDIS_MASTER_NAME"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB"`
	RedisProtocol   int    `env:"REDIS_PROTOCOL"`
	RedisTLS        bool   `env:"REDIS_TLS"`
	RedisCACert     string `env:"REDIS_CA_CERT"`
	// Object storage for PDF renditions
	ObjectStorageEndpoint     string `env:"OBJECT_STORAGE_ENDPOINT"`
	ObjectStorageRegion       string `env:"OBJECT_STORAGE_REGION"`
	ObjectStorageBucket       string `env:"OBJECT_STORAGE_BUCKET"`
	ObjectStorageAccessKeyID  string `env:"OBJECT_STORAGE_ACCESS_KEY_ID"`
	ObjectStorageSecretKey    string `env:"OBJECT_STORAGE_SECRET_KEY"`
	ObjectStorageUsePathStyle bool   `env:"OBJECT_STORAGE_USE_PATH_STYLE"`
	// PDF rendering
	PdfPoolWorkers        int    `env:"PDF_POOL_WORKERS"`
	PdfPoolTimeoutSeconds int    `env:"PDF_TIMEOUT_SECONDS"`
	PdfLayoutFile         string `env:"PDF_LAYOUT_FILE"`
	// Pause between two subjects of a batch, in milliseconds. Negative disables pacing.
	BatchIntervalMillis int `env:"BATCH_INTERVAL_MS"`
}

// ApplyDefaults fills the tunables left unset by the environment.
func (cfg *Config) ApplyDefaults() {
	if cfg.HealthPort == "" {
		cfg.HealthPort = defaultHealthPort
	}

	if cfg.DocumentLocale == "" {
		cfg.DocumentLocale = "en"
	}

	if cfg.RabbitMQNumWorkers == 0 {
		cfg.RabbitMQNumWorkers = constant.DefaultWorkerCount
	}

	if cfg.MongoMaxPoolSize == 0 {
		cfg.MongoMaxPoolSize = constant.MongoDefaultMaxPoolSize
	}

	if cfg.PdfPoolWorkers == 0 {
		cfg.PdfPoolWorkers = constant.PDFDefaultWorkers
	}

	if cfg.PdfPoolTimeoutSeconds == 0 {
		cfg.PdfPoolTimeoutSeconds = defaultPdfTimeoutSecond
	}

	if cfg.BatchIntervalMillis == 0 {
		cfg.BatchIntervalMillis = int(constant.DefaultBatchInterval / time.Millisecond)
	}

	if cfg.ObjectStorageBucket == "" {
		cfg.ObjectStorageBucket = constant.ApplicationName
	}

	if cfg.DirectorySSLMode == "" {
		cfg.DirectorySSLMode = "disable"
	}
}

// BatchInterval is the pacing between two subjects. Zero disables pacing.
func (cfg *Config) BatchInterval() time.Duration {
	if cfg.BatchIntervalMillis < 0 {
		return 0
	}

	return time.Duration(cfg.BatchIntervalMillis) * time.Millisecond
}

// Validate checks required fields and production rules, reporting every violation at once.
func (cfg *Config) Validate() error {
	var errs []string

	required := []struct {
		value string
		env   string
	}{
		{cfg.MongoDBHost, "MONGO_HOST"},
		{cfg.MongoDBName, "MONGO_NAME"},
		{cfg.DirectoryHost, "DIRECTORY_DB_HOST"},
		{cfg.DirectoryName, "DIRECTORY_DB_NAME"},
		{cfg.RabbitMQHost, "RABBITMQ_HOST"},
		{cfg.RabbitMQPortAMQP, "RABBITMQ_PORT_AMQP"},
		{cfg.RabbitMQUser, "RABBITMQ_DEFAULT_USER"},
		{cfg.RabbitMQPass, "RABBITMQ_DEFAULT_PASS"},
		{cfg.RabbitMQGenerateBatchQueue, "RABBITMQ_GENERATE_BATCH_QUEUE"},
		{cfg.RedisHost, "REDIS_HOST"},
		{cfg.ObjectStorageEndpoint, "OBJECT_STORAGE_ENDPOINT"},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.env+" is required")
		}
	}

	errs = append(errs, validateRange("RABBITMQ_NUMBERS_OF_WORKERS", cfg.RabbitMQNumWorkers, consumerWorkersMax)...)
	errs = append(errs, validateRange("MONGO_MAX_POOL_SIZE", cfg.MongoMaxPoolSize, constant.MongoMaxPoolSizeUpperBound)...)
	errs = append(errs, validateRange("PDF_POOL_WORKERS", cfg.PdfPoolWorkers, pdfPoolWorkersMax)...)
	errs = append(errs, validateRange("PDF_TIMEOUT_SECONDS", cfg.PdfPoolTimeoutSeconds, pdfTimeoutSecondsMax)...)

	if cfg.BatchIntervalMillis > batchIntervalMillisMax {
		errs = append(errs, fmt.Sprintf("BATCH_INTERVAL_MS must be at most %d", batchIntervalMillisMax))
	}

	if strings.EqualFold(cfg.EnvName, "production") {
		errs = append(errs, cfg.validateProduction()...)
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
}

func (cfg *Config) validateProduction() []string {
	var errs []string

	secrets := []struct {
		value string
		env   string
	}{
		{cfg.MongoDBPassword, "MONGO_PASSWORD"},
		{cfg.DirectoryPassword, "DIRECTORY_DB_PASSWORD"},
		{cfg.RabbitMQPass, "RABBITMQ_DEFAULT_PASS"},
		{cfg.RedisPassword, "REDIS_PASSWORD"},
		{cfg.ObjectStorageSecretKey, "OBJECT_STORAGE_SECRET_KEY"},
	}

	for _, s := range secrets {
		if s.value == constant.DefaultPasswordPlaceholder {
			errs = append(errs, s.env+" must not use the default placeholder in production")
		}
	}

	return errs
}

func validateRange(env string, value, upper int) []string {
	if value < 1 || value > upper {
		return []string{fmt.Sprintf("%s must be between 1 and %d", env, upper)}
	}

	return nil
}
