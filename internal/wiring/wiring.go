// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/emorec/internal/adapters/annotations"
	_ "go.trai.ch/emorec/internal/adapters/cas"
	_ "go.trai.ch/emorec/internal/adapters/config"
	_ "go.trai.ch/emorec/internal/adapters/features"
	_ "go.trai.ch/emorec/internal/adapters/ffmpeg"
	_ "go.trai.ch/emorec/internal/adapters/fs"
	_ "go.trai.ch/emorec/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/emorec/internal/app"
)
