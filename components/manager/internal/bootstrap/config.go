// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/LerianStudio/condo-docs/pkg/constant"
)

// Rate limit bounds accepted by Validate.
const (
	rateLimitGlobalMax   = 10000
	rateLimitDownloadMax = 1000
	rateLimitWriteMax    = 5000

	defaultRateLimitGlobal   = 100
	defaultRateLimitDownload = 10
	defaultRateLimitWrite    = 50
	defaultRateLimitWindow   = 60
)

// Config is the top level configuration struct for the entire application.
type Config struct {
	EnvName       string `env:"ENV_NAME"`
	LogLevel      string `env:"LOG_LEVEL"`
	ServerAddress string `env:"SERVER_ADDRESS"`
	Version       string `env:"VERSION"`
	// Locale drives date and currency formatting of resolved variables.
	DocumentLocale string `env:"DOCUMENT_LOCALE"`
	// OpenTelemetry
	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME"`
	OtelServiceVersion      string `env:"OTEL_RESOURCE_SERVICE_VERSION"`
	OtelDeploymentEnv       string `env:"OTEL_RESOURCE_DEPLOYMENT_ENVIRONMENT"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	EnableTelemetry         bool   `env:"ENABLE_TELEMETRY"`
	// MongoDB
	MongoURI          string `env:"MONGO_URI"`
	MongoDBHost       string `env:"MONGO_HOST"`
	MongoDBName       string `env:"MONGO_NAME"`
	MongoDBUser       string `env:"MONGO_USER"`
	MongoDBPassword   string `env:"MONGO_PASSWORD"`
	MongoDBPort       string `env:"MONGO_PORT"`
	MongoDBParameters string `env:"MONGO_PARAMETERS"`
	MongoMaxPoolSize  string `env:"MONGO_MAX_POOL_SIZE"`
	// PostgreSQL member directory
	DirectoryHost     string `env:"DIRECTORY_DB_HOST"`
	DirectoryPort     string `env:"DIRECTORY_DB_PORT"`
	DirectoryUser     string `env:"DIRECTORY_DB_USER"`
	DirectoryPassword string `env:"DIRECTORY_DB_PASSWORD"`
	DirectoryName     string `env:"DIRECTORY_DB_NAME"`
	DirectorySSLMode  string `env:"DIRECTORY_DB_SSL_MODE"`
	// RabbitMQ
	RabbitURI                  string `env:"RABBITMQ_URI"`
	RabbitMQHost               string `env:"RABBITMQ_HOST"`
	RabbitMQPortHost           string `env:"RABBITMQ_PORT_HOST"`
	RabbitMQPortAMQP           string `env:"RABBITMQ_PORT_AMQP"`
	RabbitMQUser               string `env:"RABBITMQ_DEFAULT_USER"`
	RabbitMQPass               string `env:"RABBITMQ_DEFAULT_PASS"`
	RabbitMQGenerateBatchQueue string `env:"RABBITMQ_GENERATE_BATCH_QUEUE"`
	RabbitMQExchange           string `env:"RABBITMQ_EXCHANGE"`
	RabbitMQGenerateBatchKey   string `env:"RABBITMQ_GENERATE_BATCH_KEY"`
	RabbitMQHealthCheckURL     string `env:"RABBITMQ_HEALTH_CHECK_URL"`
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
	// Rate limiting
	RateLimitEnabled       bool `env:"RATE_LIMIT_ENABLED"`
	RateLimitGlobal        int  `env:"RATE_LIMIT_GLOBAL"`
	RateLimitDownload      int  `env:"RATE_LIMIT_DOWNLOAD"`
	RateLimitWrite         int  `env:"RATE_LIMIT_WRITE"`
	RateLimitWindowSeconds int  `env:"RATE_LIMIT_WINDOW_SECONDS"`
	RateLimitUseRedis      bool `env:"RATE_LIMIT_USE_REDIS"`
	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"`
	CORSAllowedMethods string `env:"CORS_ALLOWED_METHODS"`
	CORSAllowedHeaders string `env:"CORS_ALLOWED_HEADERS"`
}

// ApplyDefaults fills the tunables left unset by the environment.
func (cfg *Config) ApplyDefaults() {
	if cfg.RateLimitGlobal == 0 {
		cfg.RateLimitGlobal = defaultRateLimitGlobal
	}

	if cfg.RateLimitDownload == 0 {
		cfg.RateLimitDownload = defaultRateLimitDownload
	}

	if cfg.RateLimitWrite == 0 {
		cfg.RateLimitWrite = defaultRateLimitWrite
	}

	if cfg.RateLimitWindowSeconds == 0 {
		cfg.RateLimitWindowSeconds = defaultRateLimitWindow
	}

	if cfg.DocumentLocale == "" {
		cfg.DocumentLocale = "en"
	}

	if cfg.ObjectStorageBucket == "" {
		cfg.ObjectStorageBucket = constant.ApplicationName
	}

	if cfg.DirectorySSLMode == "" {
		cfg.DirectorySSLMode = "disable"
	}
}

// Validate checks required fields and production rules, reporting every violation at once.
func (cfg *Config) Validate() error {
	var errs []string

	required := []struct {
		value string
		env   string
	}{
		{cfg.ServerAddress, "SERVER_ADDRESS"},
		{cfg.MongoDBHost, "MONGO_HOST"},
		{cfg.MongoDBName, "MONGO_NAME"},
		{cfg.DirectoryHost, "DIRECTORY_DB_HOST"},
		{cfg.DirectoryName, "DIRECTORY_DB_NAME"},
		{cfg.RabbitMQHost, "RABBITMQ_HOST"},
		{cfg.RabbitMQPortAMQP, "RABBITMQ_PORT_AMQP"},
		{cfg.RabbitMQUser, "RABBITMQ_DEFAULT_USER"},
		{cfg.RabbitMQPass, "RABBITMQ_DEFAULT_PASS"},
		{cfg.RabbitMQGenerateBatchQueue, "RABBITMQ_GENERATE_BATCH_QUEUE"},
		{cfg.RabbitMQExchange, "RABBITMQ_EXCHANGE"},
		{cfg.RabbitMQGenerateBatchKey, "RABBITMQ_GENERATE_BATCH_KEY"},
		{cfg.RedisHost, "REDIS_HOST"},
		{cfg.ObjectStorageEndpoint, "OBJECT_STORAGE_ENDPOINT"},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.env+" is required")
		}
	}

	errs = append(errs, cfg.validateMongoPool()...)
	errs = append(errs, validateRange("RATE_LIMIT_GLOBAL", cfg.RateLimitGlobal, rateLimitGlobalMax)...)
	errs = append(errs, validateRange("RATE_LIMIT_DOWNLOAD", cfg.RateLimitDownload, rateLimitDownloadMax)...)
	errs = append(errs, validateRange("RATE_LIMIT_WRITE", cfg.RateLimitWrite, rateLimitWriteMax)...)

	if cfg.RateLimitWindowSeconds < 1 {
		errs = append(errs, "RATE_LIMIT_WINDOW_SECONDS must be positive")
	}

	if cfg.isProduction() {
		errs = append(errs, cfg.validateProduction()...)
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
}

func (cfg *Config) isProduction() bool {
	return strings.EqualFold(cfg.EnvName, "production")
}

func (cfg *Config) validateMongoPool() []string {
	if cfg.MongoMaxPoolSize == "" {
		return nil
	}

	size, err := strconv.Atoi(cfg.MongoMaxPoolSize)
	if err != nil || size < 1 || size > constant.MongoMaxPoolSizeUpperBound {
		return []string{fmt.Sprintf("MONGO_MAX_POOL_SIZE must be between 1 and %d", constant.MongoMaxPoolSizeUpperBound)}
	}

	return nil
}

func (cfg *Config) validateProduction() []string {
	var errs []string

	if !cfg.RateLimitEnabled {
		errs = append(errs, "RATE_LIMIT_ENABLED must be true in production")
	}

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

	origins := strings.TrimSpace(cfg.CORSAllowedOrigins)
	if origins == "" {
		return append(errs, "CORS_ALLOWED_ORIGINS must not be empty in production")
	}

	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)

		if origin == "*" {
			errs = append(errs, "CORS_ALLOWED_ORIGINS must not contain wildcard (*) in production")
			break
		}

		if !strings.HasPrefix(origin, "https://") {
			errs = append(errs, "CORS_ALLOWED_ORIGINS must use HTTPS in production")
			break
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
