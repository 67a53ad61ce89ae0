// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fuse/internal/adapters/config"
	_ "go.trai.ch/fuse/internal/adapters/gql"
	_ "go.trai.ch/fuse/internal/adapters/logger"
	_ "go.trai.ch/fuse/internal/adapters/metrics"
	_ "go.trai.ch/fuse/internal/adapters/registry"
	_ "go.trai.ch/fuse/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/fuse/internal/app"
	_ "go.trai.ch/fuse/internal/engine/dispatcher"
)
