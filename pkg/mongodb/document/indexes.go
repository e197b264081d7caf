// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package document

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

func indexModels() []mongo.IndexModel {
	active := bson.D{{Key: "deleted_at", Value: nil}}

	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "_id", Value: 1},
				{Key: "deleted_at", Value: 1},
			},
			Options: options.Index().SetName("idx_document_id_deleted"),
		},
		{
			Keys: bson.D{
				{Key: "metadata.batch_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().
				SetName("idx_document_batch").
				SetPartialFilterExpression(active),
		},
		{
			Keys: bson.D{
				{Key: "building_id", Value: 1},
				{Key: "metadata.member_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("idx_document_building_member").
				SetPartialFilterExpression(active),
		},
	}
}

// EnsureIndexes creates all indexes for the generated documents collection.
func (dr *DocumentMongoDBRepository) EnsureIndexes(ctx context.Context) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.document.ensure_indexes")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.collection", constant.MongoCollectionDocument),
	)

	logger.Infof("Creating indexes for %s collection", constant.MongoCollectionDocument)

	coll, err := dr.collection(ctx)
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
