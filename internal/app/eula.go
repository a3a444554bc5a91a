package app

import (
	"os"

	"go.trai.ch/zerr"
)

const (
	eulaPath     = "eula.txt"
	eulaContents = "# Signed by mup\neula=true"
)

// SignEULA overwrites eula.txt with an accepted EULA.
func (a *App) SignEULA() error {
	a.logger.Info("overwriting eula.txt")

	if err := os.WriteFile(eulaPath, []byte(eulaContents), 0o644); err != nil { //nolint:gosec // the file is meant to be world-readable
		return zerr.Wrap(err, "failed to write eula.txt")
	}
	return nil
}
