// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate the process environment and do not run in parallel.
func TestInitLocalEnvConfig(t *testing.T) {
	t.Run("Success - loads file without overriding", func(t *testing.T) {
		t.Setenv("ENV_NAME", "")
		t.Setenv("CONDO_DOCS_PRESET", "kept")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CONDO_DOCS_FROM_FILE=yes\nCONDO_DOCS_PRESET=overridden\n"), 0o600))

		t.Cleanup(func() { os.Unsetenv("CONDO_DOCS_FROM_FILE") })

		cfg, err := InitLocalEnvConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Loaded)
		assert.Equal(t, "yes", os.Getenv("CONDO_DOCS_FROM_FILE"))
		assert.Equal(t, "kept", os.Getenv("CONDO_DOCS_PRESET"))
	})

	t.Run("Success - missing file is ignored", func(t *testing.T) {
		t.Setenv("ENV_NAME", "local")

		cfg, err := InitLocalEnvConfig(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.False(t, cfg.Loaded)
	})

	t.Run("Success - skipped outside local", func(t *testing.T) {
		t.Setenv("ENV_NAME", "production")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CONDO_DOCS_SKIPPED=yes\n"), 0o600))

		cfg, err := InitLocalEnvConfig(path)
		require.NoError(t, err)
		assert.False(t, cfg.Loaded)
		assert.Empty(t, os.Getenv("CONDO_DOCS_SKIPPED"))
	})
}
