// Package wiring registers all graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mupmc/mup/internal/adapters/fabric"
	_ "github.com/mupmc/mup/internal/adapters/forge"
	_ "github.com/mupmc/mup/internal/adapters/hangar"
	_ "github.com/mupmc/mup/internal/adapters/lockfile"
	_ "github.com/mupmc/mup/internal/adapters/logger"
	_ "github.com/mupmc/mup/internal/adapters/modrinth"
	_ "github.com/mupmc/mup/internal/adapters/neoforge"
	_ "github.com/mupmc/mup/internal/adapters/paper"
	_ "github.com/mupmc/mup/internal/adapters/progress"
	_ "github.com/mupmc/mup/internal/adapters/vanilla"
	_ "github.com/mupmc/mup/internal/adapters/web"
	// Register app nodes.
	_ "github.com/mupmc/mup/internal/app"
)
