// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libRabbitMQ "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
)

const (
	// healthServerReadTimeout is the maximum duration for reading the entire request.
	healthServerReadTimeout = 5 * time.Second

	// healthServerWriteTimeout is the maximum duration before timing out writes of the response.
	healthServerWriteTimeout = 5 * time.Second

	// healthServerIdleTimeout is the maximum duration an idle connection will remain open.
	healthServerIdleTimeout = 30 * time.Second

	// healthServerShutdownTimeout is the maximum duration to wait for the server to shutdown gracefully.
	healthServerShutdownTimeout = 5 * time.Second

	// dependencyCheckTimeout bounds a single dependency probe.
	dependencyCheckTimeout = 2 * time.Second
)

// pinger is satisfied by the batch state repository.
type pinger interface {
	Ping(ctx context.Context) error
}

// healthReporter is satisfied by the PDF worker pool.
type healthReporter interface {
	IsHealthy() bool
}

// HealthServer provides HTTP liveness and readiness endpoints for the worker.
// It runs alongside the RabbitMQ consumer.
type HealthServer struct {
	server             *http.Server
	rabbitMQConnection *libRabbitMQ.RabbitMQConnection
	batchState         pinger
	renderer           healthReporter
	logger             log.Logger
}

// NewHealthServer creates a new HealthServer bound to the given port. Nil
// dependencies are reported as not configured by /ready.
func NewHealthServer(port string, rabbitMQConnection *libRabbitMQ.RabbitMQConnection, batchState pinger, renderer healthReporter, logger log.Logger) *HealthServer {
	hs := &HealthServer{
		rabbitMQConnection: rabbitMQConnection,
		batchState:         batchState,
		renderer:           renderer,
		logger:             logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", hs.handleHealth)
	mux.HandleFunc("/ready", hs.handleReady)

	hs.server = &http.Server{
		Addr:         net.JoinHostPort("", port),
		Handler:      mux,
		ReadTimeout:  healthServerReadTimeout,
		WriteTimeout: healthServerWriteTimeout,
		IdleTimeout:  healthServerIdleTimeout,
	}

	return hs
}

// Start begins listening for health check requests in a background goroutine.
func (hs *HealthServer) Start() {
	go func() {
		hs.logger.Infof("Health server listening on %s", hs.server.Addr)

		if err := hs.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			hs.logger.Errorf("Health server error: %v", err)
		}
	}()
}

// Shutdown gracefully stops the health server.
func (hs *HealthServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), healthServerShutdownTimeout)
	defer cancel()

	if err := hs.server.Shutdown(ctx); err != nil {
		hs.logger.Errorf("Health server shutdown error: %v", err)
	}
}

// handleHealth is the liveness probe handler. No dependency checks.
func (hs *HealthServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "alive"}); err != nil {
		hs.logger.Errorf("Failed to encode health response: %v", err)
	}
}

// handleReady is the readiness probe handler. It returns 503 unless every dependency is ready.
func (hs *HealthServer) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	deps := map[string]*dependencyStatus{
		"rabbitmq":    hs.checkRabbitMQ(),
		"redis":       hs.checkRedis(r.Context()),
		"pdfRenderer": hs.checkRenderer(),
	}

	status, code := "ready", http.StatusOK

	for _, dep := range deps {
		if dep.Status != "ready" {
			status, code = "not_ready", http.StatusServiceUnavailable

			break
		}
	}

	w.WriteHeader(code)

	resp := map[string]any{
		"status":       status,
		"dependencies": deps,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		hs.logger.Errorf("Failed to encode readiness response: %v", err)
	}
}

// dependencyStatus represents the health state of a single dependency.
type dependencyStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// checkRabbitMQ verifies the RabbitMQ connection is alive and healthy.
func (hs *HealthServer) checkRabbitMQ() *dependencyStatus {
	if hs.rabbitMQConnection == nil {
		return &dependencyStatus{Status: "not_ready", Message: "connection not configured"}
	}

	if !hs.rabbitMQConnection.Connected || hs.rabbitMQConnection.Connection == nil || hs.rabbitMQConnection.Connection.IsClosed() {
		return &dependencyStatus{Status: "not_ready", Message: "connection is closed"}
	}

	if !hs.rabbitMQConnection.HealthCheck() {
		return &dependencyStatus{Status: "not_ready", Message: "health check failed"}
	}

	return &dependencyStatus{Status: "ready"}
}

// checkRedis pings the store holding batch progress and locks.
func (hs *HealthServer) checkRedis(ctx context.Context) *dependencyStatus {
	if hs.batchState == nil {
		return &dependencyStatus{Status: "not_ready", Message: "connection not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, dependencyCheckTimeout)
	defer cancel()

	if err := hs.batchState.Ping(ctx); err != nil {
		hs.logger.Warnf("Readiness: redis ping failed: %v", err)

		return &dependencyStatus{Status: "not_ready", Message: "ping failed"}
	}

	return &dependencyStatus{Status: "ready"}
}

// checkRenderer reports whether the PDF worker pool still accepts work.
func (hs *HealthServer) checkRenderer() *dependencyStatus {
	if hs.renderer == nil {
		return &dependencyStatus{Status: "not_ready", Message: "renderer not configured"}
	}

	if !hs.renderer.IsHealthy() {
		return &dependencyStatus{Status: "not_ready", Message: "renderer pool is closed"}
	}

	return &dependencyStatus{Status: "ready"}
}
