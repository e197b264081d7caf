// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/LerianStudio/condo-docs/components/manager/internal/bootstrap"
	"github.com/LerianStudio/condo-docs/pkg"
)

// @title			Condo Docs
// @version		1.0.0
// @description	Document templates and bulk generation for condominium administration.
// @termsOfService	http://swagger.io/terms/
// @host			localhost:4005
// @BasePath		/
func main() {
	if _, err := pkg.InitLocalEnvConfig(""); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load local env file: %v\n", err)
		os.Exit(1)
	}

	svc, err := bootstrap.InitServers()
	if err != nil {
		// The structured logger is created inside InitServers.
		fmt.Fprintf(os.Stderr, "Failed to initialize manager: %v\n", err)
		os.Exit(1)
	}

	svc.Run()
}
