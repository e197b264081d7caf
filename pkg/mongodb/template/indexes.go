// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package template

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/mongodb"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

// indexModels lists the indexes of the templates collection.
func indexModels() []mongo.IndexModel {
	active := bson.D{{Key: "deleted_at", Value: nil}}

	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "_id", Value: 1},
				{Key: "deleted_at", Value: 1},
			},
			Options: options.Index().SetName("idx_template_id_deleted"),
		},
		{
			Keys: bson.D{
				{Key: "deleted_at", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("idx_template_list_main").
				SetPartialFilterExpression(active),
		},
		{
			Keys: bson.D{
				{Key: "building_id", Value: 1},
				{Key: "document_type", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("idx_template_building_type").
				SetPartialFilterExpression(active),
		},
	}
}

// EnsureIndexes creates all indexes for the templates collection.
func (tm *TemplateMongoDBRepository) EnsureIndexes(ctx context.Context) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.template.ensure_indexes")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.collection", constant.MongoCollectionTemplate),
	)

	logger.Infof("Creating indexes for %s collection", constant.MongoCollectionTemplate)

	coll, err := tm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return err
	}

	if err := mongodb.CreateIndexes(ctx, coll, indexModels()); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to create indexes", err)
		return err
	}

	return nil
}
