// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/sony/gobreaker"
)

// CircuitBreakerManager keeps one circuit breaker per downstream collaborator
// (document store, PDF renderer) so a failing dependency fast-fails the remaining
// subjects of a batch instead of timing out on each of them.
type CircuitBreakerManager struct {
	breakers map[string]*gobreaker.CircuitBreaker
	mu       sync.RWMutex
	logger   log.Logger
}

// NewCircuitBreakerManager creates a new circuit breaker manager
func NewCircuitBreakerManager(logger log.Logger) *CircuitBreakerManager {
	return &CircuitBreakerManager{
		breakers: make(map[string]*gobreaker.CircuitBreaker),
		logger:   logger,
	}
}

// GetOrCreate returns existing circuit breaker or creates a new one
func (cbm *CircuitBreakerManager) GetOrCreate(name string) *gobreaker.CircuitBreaker {
	cbm.mu.RLock()
	breaker, exists := cbm.breakers[name]
	cbm.mu.RUnlock()

	if exists {
		return breaker
	}

	cbm.mu.Lock()
	defer cbm.mu.Unlock()

	if breaker, exists = cbm.breakers[name]; exists {
		return breaker
	}

	breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: constant.CircuitBreakerMaxRequests,
		Interval:    constant.CircuitBreakerInterval,
		Timeout:     constant.CircuitBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= constant.CircuitBreakerThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				cbm.logger.Errorf("Circuit Breaker [%s] OPENED (%s -> %s), requests will fast-fail", name, from.String(), to.String())
			case gobreaker.StateHalfOpen:
				cbm.logger.Infof("Circuit Breaker [%s] HALF-OPEN, testing recovery", name)
			case gobreaker.StateClosed:
				cbm.logger.Infof("Circuit Breaker [%s] CLOSED", name)
			}
		},
	})
	cbm.breakers[name] = breaker

	return breaker
}

// Execute runs fn through the named circuit breaker.
func (cbm *CircuitBreakerManager) Execute(name string, fn func() (any, error)) (any, error) {
	result, err := cbm.GetOrCreate(name).Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			cbm.logger.Warnf("Circuit breaker [%s] is OPEN - request rejected immediately", name)
			return nil, fmt.Errorf("%s is currently unavailable (circuit breaker open): %w", name, err)
		}

		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s is recovering (too many requests): %w", name, err)
		}
	}

	return result, err
}

// GetState returns the current state of a circuit breaker
func (cbm *CircuitBreakerManager) GetState(name string) string {
	cbm.mu.RLock()
	breaker, exists := cbm.breakers[name]
	cbm.mu.RUnlock()

	if !exists {
		return "not_initialized"
	}

	switch breaker.State() {
	case gobreaker.StateClosed:
		return constant.CircuitBreakerStateClosed
	case gobreaker.StateOpen:
		return constant.CircuitBreakerStateOpen
	case gobreaker.StateHalfOpen:
		return constant.CircuitBreakerStateHalfOpen
	default:
		return "unknown"
	}
}

// IsHealthy returns false only while the breaker is open.
func (cbm *CircuitBreakerManager) IsHealthy(name string) bool {
	return cbm.GetState(name) != constant.CircuitBreakerStateOpen
}
