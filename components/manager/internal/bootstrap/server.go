// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/gofiber/fiber/v2"
)

const serverShutdownTimeout = 30 * time.Second

// Server represents the http server of the document service.
type Server struct {
	app           *fiber.App
	serverAddress string
	logger        log.Logger
	signals       chan os.Signal
}

// ServerAddress returns is a convenience method to return the server address.
func (s *Server) ServerAddress() string {
	return s.serverAddress
}

// NewServer creates an instance of Server.
func NewServer(cfg *Config, app *fiber.App, logger log.Logger) *Server {
	return &Server{
		app:           app,
		serverAddress: cfg.ServerAddress,
		logger:        logger,
		signals:       make(chan os.Signal, 1),
	}
}

// Run listens until the process receives SIGINT or SIGTERM, then drains in-flight
// requests for at most serverShutdownTimeout.
func (s *Server) Run(_ *libCommons.Launcher) error {
	signal.Notify(s.signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(s.signals)

	errCh := make(chan error, 1)

	go func() {
		s.logger.Infof("HTTP server listening on %s", s.serverAddress)

		errCh <- s.app.Listen(s.serverAddress)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("HTTP server stopped: %v", err)
			return err
		}

		return nil
	case sig := <-s.signals:
		s.logger.Infof("Received signal %s, shutting down HTTP server...", sig)
	}

	if err := s.app.ShutdownWithTimeout(serverShutdownTimeout); err != nil {
		s.logger.Errorf("HTTP server shutdown failed: %v", err)
		return err
	}

	s.logger.Info("HTTP server stopped")

	return nil
}
