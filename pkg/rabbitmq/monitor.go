// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package rabbitmq

import (
	"sync"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libRabbitmq "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
)

// tickerFactory creates a channel that receives ticks and a stop function.
// Overridable in tests.
var tickerFactory = newRealTicker

func newRealTicker() (<-chan time.Time, func()) {
	t := time.NewTicker(constant.ConnectionMonitorInterval)
	return t.C, t.Stop
}

// ConnectionMonitor checks a RabbitMQ connection in the background and calls
// EnsureChannel when it is dead, so readiness recovers even when nothing publishes.
type ConnectionMonitor struct {
	conn     *libRabbitmq.RabbitMQConnection
	logger   log.Logger
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewConnectionMonitor creates a monitor for conn.
func NewConnectionMonitor(conn *libRabbitmq.RabbitMQConnection, logger log.Logger) *ConnectionMonitor {
	return &ConnectionMonitor{
		conn:   conn,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the monitor goroutine. A panic inside it is logged, not propagated.
func (m *ConnectionMonitor) Start() {
	pkg.GoNamed(m.logger, "rabbitmq-connection-monitor", m.loop)
}

// Stop signals the monitor to shut down and waits for it. Safe to call twice.
func (m *ConnectionMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}

func (m *ConnectionMonitor) loop() {
	defer close(m.done)

	tickCh, stopTicker := tickerFactory()
	defer stopTicker()

	for {
		select {
		case <-m.stop:
			m.logger.Info("RabbitMQ connection monitor stopped")

			return
		case <-tickCh:
			m.checkAndReconnect()
		}
	}
}

// IsConnectionAlive reports whether conn is connected with an open AMQP connection.
func IsConnectionAlive(conn *libRabbitmq.RabbitMQConnection) bool {
	if conn == nil || !conn.Connected {
		return false
	}

	return conn.Connection != nil && !conn.Connection.IsClosed()
}

func (m *ConnectionMonitor) checkAndReconnect() {
	if IsConnectionAlive(m.conn) {
		return
	}

	m.logger.Warn("RabbitMQ connection is dead, attempting reconnection via EnsureChannel...")

	if err := m.conn.EnsureChannel(); err != nil {
		m.logger.Errorf("RabbitMQ reconnection failed: %v (will retry in %v)", err, constant.ConnectionMonitorInterval)

		return
	}

	m.logger.Info("RabbitMQ connection restored by background monitor")
}
