// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/mongodb"

	libMongo "github.com/LerianStudio/lib-commons/v3/commons/mongo"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

// DocumentMongoDBRepository is the MongoDB document store of generated documents.
type DocumentMongoDBRepository struct {
	connection *libMongo.MongoConnection
	Database   string

	// Now stamps created and updated times. Defaults to time.Now.
	Now func() time.Time
}

// Compile-time interface satisfaction check.
var _ batch.DocumentStore = (*DocumentMongoDBRepository)(nil)

// NewDocumentMongoDBRepository returns a new instance of DocumentMongoDBRepository using the given MongoDB connection.
func NewDocumentMongoDBRepository(mc *libMongo.MongoConnection) (*DocumentMongoDBRepository, error) {
	r := &DocumentMongoDBRepository{
		connection: mc,
		Database:   mc.Database,
		Now:        time.Now,
	}
	if _, err := r.connection.GetDB(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb for documents: %w", err)
	}

	return r, nil
}

func (dr *DocumentMongoDBRepository) now() time.Time {
	if dr.Now == nil {
		return time.Now()
	}

	return dr.Now()
}

func (dr *DocumentMongoDBRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := dr.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return db.Database(strings.ToLower(dr.Database)).Collection(strings.ToLower(constant.MongoCollectionDocument)), nil
}

// Save inserts doc, assigning its id and timestamps when they are empty.
func (dr *DocumentMongoDBRepository) Save(ctx context.Context, doc *model.GeneratedDocument) error {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.document.save")
	defer span.End()

	if doc.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to generate document id", err)
			return err
		}

		doc.ID = id
	}

	now := dr.now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}

	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", doc.ID.String()),
		attribute.String("app.request.batch_id", doc.Metadata.BatchID.String()),
	)

	coll, err := dr.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return err
	}

	record := &DocumentMongoDBModel{}
	record.FromEntity(doc)

	if _, err := coll.InsertOne(ctx, record); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to insert document", err)
		return err
	}

	return nil
}

// Get retrieves a non-deleted document by id.
func (dr *DocumentMongoDBRepository) Get(ctx context.Context, id uuid.UUID) (*model.GeneratedDocument, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.document.get")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	coll, err := dr.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	var record DocumentMongoDBModel

	if err := coll.FindOne(ctx, bson.M{"_id": id, "deleted_at": mongodb.NotDeleted()}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionDocument)
		}

		libOpentelemetry.HandleSpanError(&span, "Failed to find document by id", err)

		return nil, err
	}

	return record.ToEntity(), nil
}

// Delete soft deletes a document.
func (dr *DocumentMongoDBRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.document.delete")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	coll, err := dr.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return err
	}

	filter := bson.D{{Key: "_id", Value: id}, {Key: "deleted_at", Value: mongodb.NotDeleted()}}
	deletedAt := bson.D{{Key: "$set", Value: bson.D{{Key: "deleted_at", Value: dr.now()}}}}

	result, err := coll.UpdateOne(ctx, filter, deletedAt)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to delete document", err)
		return err
	}

	if result.MatchedCount == 0 {
		return pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionDocument)
	}

	logger.Infof("Document %s soft deleted", id)

	return nil
}

// FindByBatch lists the non-deleted documents of a batch, oldest first.
func (dr *DocumentMongoDBRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) ([]*model.GeneratedDocument, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.document.find_by_batch")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", batchID.String()),
	)

	coll, err := dr.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	filter := bson.M{"metadata.batch_id": batchID, "deleted_at": mongodb.NotDeleted()}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to find documents by batch", err)
		return nil, err
	}

	defer cur.Close(ctx)

	documents := make([]*model.GeneratedDocument, 0)

	for cur.Next(ctx) {
		var record DocumentMongoDBModel
		if err := cur.Decode(&record); err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to decode document", err)
			return nil, err
		}

		documents = append(documents, record.ToEntity())
	}

	if err := cur.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to iterate documents", err)
		return nil, err
	}

	return documents, nil
}

// UpdateStatus finishes a processing document as generated or failed.
// Only documents still in processing are updated.
func (dr *DocumentMongoDBRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update model.StatusUpdate) error {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.document.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
		attribute.String("app.request.status", update.Status),
	)

	if update.Status != constant.DocumentStatusGenerated && update.Status != constant.DocumentStatusFailed {
		return fmt.Errorf("document cannot move to status %q: %w", update.Status, constant.ErrBadRequest)
	}

	coll, err := dr.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return err
	}

	fields := bson.M{
		"status":     update.Status,
		"updated_at": dr.now(),
	}

	if update.PdfURL != "" {
		fields["pdf_url"] = update.PdfURL
	}

	if update.FailureReason != "" {
		fields["metadata.failure_reason"] = update.FailureReason
	}

	filter := bson.M{
		"_id":        id,
		"status":     constant.DocumentStatusProcessing,
		"deleted_at": mongodb.NotDeleted(),
	}

	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to update document status", err)
		return err
	}

	if result.MatchedCount == 0 {
		return pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionDocument)
	}

	return nil
}
