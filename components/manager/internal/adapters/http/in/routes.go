// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"context"
	"errors"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/net/http"
	"github.com/LerianStudio/condo-docs/pkg/storage"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	mongoDB "github.com/LerianStudio/lib-commons/v3/commons/mongo"
	libRabbitmq "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
	libRedis "github.com/LerianStudio/lib-commons/v3/commons/redis"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.opentelemetry.io/otel/trace"
)

const readinessCheckTimeout = 2 * time.Second

// Handlers groups the HTTP handlers mounted by NewRoutes.
type Handlers struct {
	Template     *TemplateHandler
	DocumentType *DocumentTypeHandler
	Batch        *BatchHandler
	Document     *DocumentHandler
}

// RouteConfig carries the cross-cutting settings of the router.
type RouteConfig struct {
	Version   string
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

// ReadinessDeps holds the dependency connections needed for the /ready endpoint.
type ReadinessDeps struct {
	MongoConnection    *mongoDB.MongoConnection
	RabbitMQConnection *libRabbitmq.RabbitMQConnection
	RedisConnection    *libRedis.RedisConnection
	StorageClient      storage.ObjectStorage
}

// NewRoutes creates a new fiber router with the specified handlers and middleware.
func NewRoutes(lg log.Logger, tracer trace.Tracer, h Handlers, cfg RouteConfig, deps *ReadinessDeps) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handleFiberError,
	})

	f.Use(RecoverMiddleware())
	f.Use(otelfiber.Middleware())
	f.Use(WithRequestTracking(lg, tracer))
	f.Use(WithAccessLog(lg))
	f.Use(SecurityHeaders())
	f.Use(CORSMiddleware(cfg.CORS))
	f.Use(RateLimiterMiddleware(cfg.RateLimit))

	// Template routes
	f.Post("/v1/templates/extract-variables", http.WithBody(new(model.ExtractVariablesInput), h.Template.ExtractVariables))
	f.Post("/v1/templates", http.WithBody(new(model.CreateTemplateInput), h.Template.CreateTemplate))
	f.Patch("/v1/templates/:id", ParsePathParametersUUID, http.WithBody(new(model.UpdateTemplateInput), h.Template.UpdateTemplateByID))
	f.Get("/v1/templates/:id", ParsePathParametersUUID, h.Template.GetTemplateByID)
	f.Get("/v1/templates", h.Template.GetAllTemplates)
	f.Delete("/v1/templates/:id", ParsePathParametersUUID, h.Template.DeleteTemplateByID)

	// Variable registry routes
	f.Get("/v1/document-types", h.DocumentType.GetDocumentTypes)
	f.Get("/v1/document-types/:type/variables", h.DocumentType.GetDocumentTypeVariables)

	// Batch routes
	f.Post("/v1/batches", http.WithBody(new(model.CreateBatchInput), h.Batch.CreateBatch))
	f.Get("/v1/batches/:id", ParsePathParametersUUID, h.Batch.GetBatchByID)
	f.Delete("/v1/batches/:id", ParsePathParametersUUID, h.Batch.CancelBatch)
	f.Get("/v1/batches/:id/documents", ParsePathParametersUUID, h.Batch.GetBatchDocuments)

	// Document routes
	f.Post("/v1/documents/preview", http.WithBody(new(model.PreviewInput), h.Document.PreviewDocument))
	f.Get("/v1/documents/:id/download", ParsePathParametersUUID, h.Document.DownloadDocument)
	f.Get("/v1/documents/:id", ParsePathParametersUUID, h.Document.GetDocumentByID)
	f.Delete("/v1/documents/:id", ParsePathParametersUUID, h.Document.DeleteDocumentByID)

	// Doc Swagger
	f.Get("/swagger/*", WithSwaggerEnvConfig(), fiberSwagger.WrapHandler)

	// Health
	f.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("healthy")
	})

	// Readiness - checks all dependency connections
	f.Get("/ready", readinessHandler(deps))

	// Version
	f.Get("/version", func(c *fiber.Ctx) error {
		return http.OK(c, fiber.Map{
			"version":     cfg.Version,
			"requestDate": time.Now().UTC(),
		})
	})

	return f
}

// handleFiberError renders errors that escaped the handlers, including fiber's
// own routing errors, in the API error format.
func handleFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := constant.ErrInternalServer.Error()

		switch fe.Code {
		case fiber.StatusNotFound:
			code = constant.ErrEntityNotFound.Error()
		case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest:
			code = constant.ErrBadRequest.Error()
		}

		return http.JSONResponseError(c, fe.Code, pkg.ResponseError{
			Code:    code,
			Title:   utils.StatusMessage(fe.Code),
			Message: fe.Message,
		})
	}

	return http.WithError(c, err)
}

// dependencyResult represents the health status of a single dependency in the readiness check.
type dependencyResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// readinessHandler returns a Fiber handler that checks all dependency connections.
// Returns 200 if all are healthy, 503 otherwise.
func readinessHandler(deps *ReadinessDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps == nil {
			deps = &ReadinessDeps{}
		}

		results := map[string]*dependencyResult{
			"mongodb":  checkMongoDB(deps.MongoConnection),
			"rabbitmq": checkRabbitMQ(deps.RabbitMQConnection),
			"redis":    checkRedis(deps.RedisConnection),
			"storage":  checkStorage(deps.StorageClient),
		}

		httpStatus := fiber.StatusOK
		overallStatus := "ready"

		for _, result := range results {
			if result.Status != "ready" {
				httpStatus = fiber.StatusServiceUnavailable
				overallStatus = "not_ready"

				break
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":       overallStatus,
			"dependencies": results,
		})
	}
}

func checkMongoDB(conn *mongoDB.MongoConnection) *dependencyResult {
	if conn == nil {
		return &dependencyResult{Status: "not_ready", Message: "connection not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), readinessCheckTimeout)
	defer cancel()

	db, err := conn.GetDB(ctx)
	if err != nil {
		return &dependencyResult{Status: "not_ready", Message: "failed to get connection"}
	}

	if err = db.Ping(ctx, nil); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "ping failed"}
	}

	return &dependencyResult{Status: "ready"}
}

func checkRabbitMQ(conn *libRabbitmq.RabbitMQConnection) *dependencyResult {
	if conn == nil {
		return &dependencyResult{Status: "not_ready", Message: "connection not configured"}
	}

	if !conn.Connected || conn.Connection == nil || conn.Connection.IsClosed() {
		return &dependencyResult{Status: "not_ready", Message: "connection is closed"}
	}

	if !conn.HealthCheck() {
		return &dependencyResult{Status: "not_ready", Message: "health check failed"}
	}

	return &dependencyResult{Status: "ready"}
}

func checkRedis(conn *libRedis.RedisConnection) *dependencyResult {
	if conn == nil {
		return &dependencyResult{Status: "not_ready", Message: "connection not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), readinessCheckTimeout)
	defer cancel()

	client, err := conn.GetClient(ctx)
	if err != nil {
		return &dependencyResult{Status: "not_ready", Message: "failed to get client"}
	}

	if _, err = client.Ping(ctx).Result(); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "ping failed"}
	}

	return &dependencyResult{Status: "ready"}
}

// checkStorage probes a key that never exists; a nil error proves the bucket is reachable.
func checkStorage(client storage.ObjectStorage) *dependencyResult {
	if client == nil {
		return &dependencyResult{Status: "not_ready", Message: "storage client not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), readinessCheckTimeout)
	defer cancel()

	if _, err := client.Exists(ctx, ".readiness-check"); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "storage connectivity check failed"}
	}

	return &dependencyResult{Status: "ready"}
}
