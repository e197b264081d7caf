// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

// HTTP Pagination Defaults
const (
	DefaultPaginationLimit    = 10
	DefaultPaginationPage     = 1
	DefaultMaxPaginationLimit = 100
)

// Request body limits.
const (
	// MaxTemplateContentBytes bounds the size of template content accepted by the API.
	MaxTemplateContentBytes = 512 * 1024
)

// Sort orders accepted by list endpoints.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)
