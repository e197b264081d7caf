// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
)

// Service is the application glue where we put all top level components to be used.
type Service struct {
	*MultiQueueConsumer
	log.Logger
	healthServer *HealthServer
	cleanups     []func()
}

// Run starts the application.
// This is the only necessary code to run an app in main.go
func (app *Service) Run() {
	if app.healthServer != nil {
		app.healthServer.Start()
	}

	libCommons.NewLauncher(
		libCommons.WithLogger(app.Logger),
		libCommons.RunApp("RabbitMQ Consumer", app.MultiQueueConsumer),
	).Run()

	app.Logger.Info("Starting graceful shutdown...")

	if app.healthServer != nil {
		app.Logger.Info("Stopping health server...")
		app.healthServer.Shutdown()
	}

	runCleanups(app.cleanups)

	app.Logger.Info("Graceful shutdown complete")
}

// runCleanups runs fns in reverse order of acquisition.
func runCleanups(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
