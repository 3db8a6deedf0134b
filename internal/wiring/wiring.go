// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/compdb/internal/adapters/compdb"
	_ "go.trai.ch/compdb/internal/adapters/config"
	_ "go.trai.ch/compdb/internal/adapters/fs"
	_ "go.trai.ch/compdb/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/compdb/internal/app"
)
