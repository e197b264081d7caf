// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"time"

	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/template"
	"github.com/LerianStudio/condo-docs/pkg/redis"
)

// UseCase coordinates the generation of document batches consumed from RabbitMQ.
type UseCase struct {
	// TemplateRepo loads the template a batch is generated from.
	TemplateRepo template.Repository

	// BatchRepo keeps progress, the cancellation flag and the idempotency lock.
	BatchRepo redis.BatchRepository

	// Generator runs the batch. Its PostProcessor is used for download and print
	// batches and skipped for email batches.
	Generator *batch.Generator

	// Owner identifies this worker instance in the idempotency lock.
	Owner string

	// CancelPollInterval defaults to constant.CancelPollInterval.
	CancelPollInterval time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (uc *UseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}

	return uc.Now()
}

func (uc *UseCase) cancelPollInterval() time.Duration {
	if uc.CancelPollInterval <= 0 {
		return constant.CancelPollInterval
	}

	return uc.CancelPollInterval
}

// generatorFor returns the generator of a send method. Email batches keep the
// HTML only, so they never go through the PDF post processor.
func (uc *UseCase) generatorFor(sendMethod string) *batch.Generator {
	if sendMethod != constant.SendMethodEmail || uc.Generator.PostProcessor == nil {
		return uc.Generator
	}

	g := *uc.Generator
	g.PostProcessor = nil

	return &g
}
