// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LocalEnvConfig reports how the local .env file was handled at startup.
type LocalEnvConfig struct {
	Loaded bool
	Path   string
}

// InitLocalEnvConfig loads path (".env" when empty) into the process environment
// when ENV_NAME is unset or "local". Variables already set are never overridden.
// A missing file is not an error.
func InitLocalEnvConfig(path string) (*LocalEnvConfig, error) {
	if path == "" {
		path = ".env"
	}

	cfg := &LocalEnvConfig{Path: path}

	if env := os.Getenv("ENV_NAME"); env != "" && env != "local" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}

	cfg.Loaded = true

	return cfg, nil
}
