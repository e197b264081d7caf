// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

//go:build integration

// Package mongotest starts a disposable MongoDB for repository integration tests.
package mongotest

import (
	"context"
	"os"
	"testing"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libMongo "github.com/LerianStudio/lib-commons/v3/commons/mongo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	MongoUser     = "condo"
	MongoPassword = "condo"
	defaultImage  = "mongo:7"
)

// NewConnection starts a MongoDB container and returns a connection to a fresh database.
// The container is terminated when the test ends. MONGO_TEST_IMAGE overrides the image.
func NewConnection(t *testing.T) *libMongo.MongoConnection {
	t.Helper()

	ctx := context.Background()

	image := os.Getenv("MONGO_TEST_IMAGE")
	if image == "" {
		image = defaultImage
	}

	container, err := mongodb.Run(ctx,
		image,
		mongodb.WithUsername(MongoUser),
		mongodb.WithPassword(MongoPassword),
		testcontainers.WithEnv(map[string]string{
			"MONGO_INITDB_DATABASE": "condo",
		}),
	)
	require.NoError(t, err, "start mongodb container")

	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err, "get mongodb connection string")

	conn := &libMongo.MongoConnection{
		ConnectionStringSource: connStr,
		Database:               "condo_" + uuid.NewString()[:8],
		Logger:                 &log.NoneLogger{},
		MaxPoolSize:            10,
	}

	_, err = conn.GetDB(ctx)
	require.NoError(t, err, "connect to mongodb")

	t.Cleanup(func() {
		if conn.DB != nil {
			_ = conn.DB.Disconnect(context.Background())
		}
	})

	return conn
}
