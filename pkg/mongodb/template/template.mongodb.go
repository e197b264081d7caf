// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package template

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/mongodb"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	libMongo "github.com/LerianStudio/lib-commons/v3/commons/mongo"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

// Repository provides an interface for operations related to the document template collection.
//
//go:generate mockgen --destination=template.mongodb.mock.go --package=template --copyright_file=../../../COPYRIGHT . Repository
type Repository interface {
	Create(ctx context.Context, template *model.DocumentTemplate) (*model.DocumentTemplate, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.DocumentTemplate, error)
	FindList(ctx context.Context, filters http.QueryHeader) ([]*model.DocumentTemplate, int64, error)
	Update(ctx context.Context, template *model.DocumentTemplate) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// TemplateMongoDBRepository is a MongoDB-specific implementation of the template Repository.
type TemplateMongoDBRepository struct {
	connection *libMongo.MongoConnection
	Database   string
}

// Compile-time interface satisfaction check.
var _ Repository = (*TemplateMongoDBRepository)(nil)

// NewTemplateMongoDBRepository returns a new instance of TemplateMongoDBRepository using the given MongoDB connection.
func NewTemplateMongoDBRepository(mc *libMongo.MongoConnection) (*TemplateMongoDBRepository, error) {
	r := &TemplateMongoDBRepository{
		connection: mc,
		Database:   mc.Database,
	}
	if _, err := r.connection.GetDB(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb for templates: %w", err)
	}

	return r, nil
}

func (tm *TemplateMongoDBRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := tm.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return db.Database(strings.ToLower(tm.Database)).Collection(strings.ToLower(constant.MongoCollectionTemplate)), nil
}

// Create inserts a new document template into mongo.
func (tm *TemplateMongoDBRepository) Create(ctx context.Context, template *model.DocumentTemplate) (*model.DocumentTemplate, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.template.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", template.ID.String()),
		attribute.String("app.request.document_type", template.DocumentType),
	)

	coll, err := tm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	record := &TemplateMongoDBModel{}
	record.FromEntity(template)

	if _, err := coll.InsertOne(ctx, record); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to insert template", err)
		return nil, err
	}

	return record.ToEntity(), nil
}

// FindByID retrieves a non-deleted template by id.
func (tm *TemplateMongoDBRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DocumentTemplate, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.template.find_by_id")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", id.String()),
	)

	coll, err := tm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	var record TemplateMongoDBModel

	filter := bson.M{"_id": id, "deleted_at": mongodb.NotDeleted()}

	if err := coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionTemplate)
		}

		libOpentelemetry.HandleSpanError(&span, "Failed to find template by id", err)

		return nil, err
	}

	return record.ToEntity(), nil
}

// FindList retrieves a page of non-deleted templates and the total number of matches.
func (tm *TemplateMongoDBRepository) FindList(ctx context.Context, filters http.QueryHeader) ([]*model.DocumentTemplate, int64, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.template.find_list")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.Int("app.request.limit", filters.Limit),
		attribute.Int("app.request.page", filters.Page),
	)

	coll, err := tm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, 0, err
	}

	queryFilter := listFilter(filters)

	total, err := coll.CountDocuments(ctx, queryFilter)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to count templates", err)
		return nil, 0, err
	}

	opts := options.Find().
		SetLimit(int64(filters.Limit)).
		SetSkip(int64(filters.Skip())).
		SetSort(bson.D{{Key: "created_at", Value: mongodb.SortDirection(filters.SortOrder)}})

	cur, err := coll.Find(ctx, queryFilter, opts)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to find templates", err)
		return nil, 0, err
	}

	defer cur.Close(ctx)

	templates := make([]*model.DocumentTemplate, 0, filters.Limit)

	for cur.Next(ctx) {
		var record TemplateMongoDBModel
		if err := cur.Decode(&record); err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to decode template", err)
			return nil, 0, err
		}

		templates = append(templates, record.ToEntity())
	}

	if err := cur.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to iterate templates", err)
		return nil, 0, err
	}

	return templates, total, nil
}

// listFilter builds the query of FindList. Deleted templates never match.
func listFilter(filters http.QueryHeader) bson.M {
	queryFilter := bson.M{"deleted_at": mongodb.NotDeleted()}

	if filters.BuildingID != uuid.Nil {
		queryFilter["building_id"] = filters.BuildingID
	}

	if filters.DocumentType != "" {
		queryFilter["document_type"] = filters.DocumentType
	}

	if filters.IsActive != nil {
		queryFilter["is_active"] = *filters.IsActive
	}

	if !filters.CreatedAt.IsZero() {
		queryFilter["created_at"] = bson.M{
			"$gte": filters.CreatedAt,
			"$lt":  filters.CreatedAt.Add(constant.HoursPerDay * time.Hour),
		}
	}

	return queryFilter
}

// Update persists the mutable fields of template.
func (tm *TemplateMongoDBRepository) Update(ctx context.Context, template *model.DocumentTemplate) error {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.template.update")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", template.ID.String()),
		attribute.Int("app.request.version", template.Version),
	)

	coll, err := tm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":       template.Name,
		"content":    template.Content,
		"variables":  variablesFromEntity(template.Variables),
		"is_active":  template.IsActive,
		"version":    template.Version,
		"metadata":   template.Metadata,
		"updated_at": template.UpdatedAt,
	}}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": template.ID, "deleted_at": mongodb.NotDeleted()}, update)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to update template", err)
		return err
	}

	if result.MatchedCount == 0 {
		return pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionTemplate)
	}

	return nil
}

// SoftDelete marks a template as deleted. Deleting twice reports not found.
func (tm *TemplateMongoDBRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.template.soft_delete")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", id.String()),
	)

	coll, err := tm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return err
	}

	filter := bson.D{{Key: "_id", Value: id}, {Key: "deleted_at", Value: mongodb.NotDeleted()}}
	deletedAt := bson.D{{Key: "$set", Value: bson.D{{Key: "deleted_at", Value: time.Now()}}}}

	result, err := coll.UpdateOne(ctx, filter, deletedAt)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to delete template", err)
		return err
	}

	if result.MatchedCount == 0 {
		return pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionTemplate)
	}

	logger.Infof("Template %s soft deleted", id)

	return nil
}
