// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// MongoDB collection names.
const (
	MongoCollectionTemplate = "document_template"
	MongoCollectionDocument = "generated_document"
)

// MongoDB index operation timeouts.
const (
	// MongoIndexCreateTimeout is the maximum time allowed for creating indexes.
	MongoIndexCreateTimeout = 60 * time.Second
)

// MongoDB pool configuration constant.
const (
	// MongoMaxPoolSizeUpperBound is the maximum allowed value for MongoDB connection pool size configuration.
	MongoMaxPoolSizeUpperBound = 10000

	// MongoDefaultMaxPoolSize is the default connection pool size when MONGO_MAX_POOL_SIZE is not set or zero.
	MongoDefaultMaxPoolSize = 100
)

// HoursPerDay is the width of a createdAt day filter.
const HoursPerDay = 24
