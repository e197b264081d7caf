// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package mongodb

import (
	"context"
	"strings"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotDeleted matches records that were never soft deleted.
func NotDeleted() bson.D {
	return bson.D{{Key: "$eq", Value: nil}}
}

// SortDirection converts an API sort order into a MongoDB sort direction.
func SortDirection(order string) int {
	if strings.EqualFold(order, constant.SortOrderAsc) {
		return 1
	}

	return -1
}

// IsIndexConflict reports whether err only says that the indexes already exist.
func IsIndexConflict(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "IndexOptionsConflict") ||
		strings.Contains(err.Error(), "already exists")
}

// CreateIndexes creates indexes on coll, treating already existing indexes as success.
func CreateIndexes(ctx context.Context, coll *mongo.Collection, indexes []mongo.IndexModel) error {
	logger := pkg.NewLoggerFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, constant.MongoIndexCreateTimeout)
	defer cancel()

	logger.Infof("Attempting to create %d indexes for %s collection", len(indexes), coll.Name())

	names, err := coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		if IsIndexConflict(err) {
			logger.Infof("Indexes for %s already exist (detected during creation)", coll.Name())
			return nil
		}

		logger.Errorf("Failed to create indexes for %s: %v", coll.Name(), err)

		return err
	}

	logger.Infof("Successfully created %d indexes for %s collection: %v", len(names), coll.Name(), names)

	return nil
}
