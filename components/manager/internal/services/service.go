// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"time"

	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/template"
	"github.com/LerianStudio/condo-docs/pkg/postgres"
	"github.com/LerianStudio/condo-docs/pkg/rabbitmq"
	"github.com/LerianStudio/condo-docs/pkg/redis"
	"github.com/LerianStudio/condo-docs/pkg/storage"
)

// UseCase is a struct to implement the services methods
type UseCase struct {
	// TemplateRepo provides an abstraction on top of the template data source.
	TemplateRepo template.Repository

	// DocumentRepo is the store of generated documents.
	DocumentRepo batch.DocumentStore

	// Directory reads members and buildings.
	Directory postgres.DirectoryRepository

	// Resolver computes variable values for previews.
	Resolver batch.Resolver

	// BatchRepo keeps batch progress and cancellation flags.
	BatchRepo redis.BatchRepository

	// RabbitMQRepo provides an abstraction on top of the producer rabbitmq.
	RabbitMQRepo rabbitmq.ProducerRepository

	// Storage holds the PDF renditions of generated documents.
	Storage storage.ObjectStorage

	// Exchange and RoutingKey address the batch generation queue.
	Exchange   string
	RoutingKey string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (uc *UseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}

	return uc.Now()
}
