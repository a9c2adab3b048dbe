// Package wiring registers all Graft nodes and platform builders for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/corebuild/internal/adapters/blob"
	_ "go.trai.ch/corebuild/internal/adapters/config"
	_ "go.trai.ch/corebuild/internal/adapters/corestore"
	_ "go.trai.ch/corebuild/internal/adapters/hostinfo"
	_ "go.trai.ch/corebuild/internal/adapters/logger"
	_ "go.trai.ch/corebuild/internal/adapters/metadata"
	_ "go.trai.ch/corebuild/internal/adapters/telemetry"
	_ "go.trai.ch/corebuild/internal/adapters/workspace"
	// Register platform builders before the registry node seals it.
	_ "go.trai.ch/corebuild/internal/builder/linux"
	_ "go.trai.ch/corebuild/internal/builder/osx"
	_ "go.trai.ch/corebuild/internal/builder/windows"
	// Register app nodes.
	_ "go.trai.ch/corebuild/internal/app"
)
