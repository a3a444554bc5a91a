package app

import "github.com/mupmc/mup/internal/core/ports"

// Components contains the initialized application components. This struct
// provides controlled access to the pieces needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Store  ports.LockfileStore
}
