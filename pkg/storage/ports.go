// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package storage

//go:generate mockgen --destination=ports.mock.go --package=storage --copyright_file=../../COPYRIGHT . ObjectStorage

import (
	"context"
	"io"
)

// ObjectStorage keeps the PDF renditions of generated documents.
type ObjectStorage interface {
	// Upload stores reader at key and returns the key.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// Download returns the object at key. The caller closes it.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether an object is stored at key.
	Exists(ctx context.Context, key string) (bool, error)
}
