package forge

import (
	"fmt"

	"github.com/mupmc/mup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Forge never published installer jarfiles before Minecraft 1.5.2, and
// stopped being the maintained line with the NeoForge split at 1.20.2.
var (
	minMinecraft = domain.MustGameVersion("1.5.2")
	maxMinecraft = domain.MustGameVersion("1.20.2")
)

// Build-number boundaries inside the 1.9/1.10 era where the maven tag grew
// (and then lost) a trailing minecraft component.
const (
	loaderCutoffTriple = "12.16.1.1938"
	loaderCutoffDouble = "12.16.0.1885"
)

// VersionTag computes the maven directory tag for a forge installer. The
// historical naming scheme is irregular, so the tag depends on both the
// structure of the minecraft version and, for some eras, on the loader
// build number.
func VersionTag(minecraft domain.GameVersion, loader string) (string, error) {
	if minecraft.Before(minMinecraft) {
		return "", zerr.With(domain.ErrVersionNotFound,
			"minecraft_version", minecraft.String(),
			"reason", "forge does not provide installer jarfiles before minecraft 1.5.2",
		)
	}
	if !minecraft.Before(maxMinecraft) {
		return "", zerr.With(domain.ErrVersionNotFound,
			"minecraft_version", minecraft.String(),
			"reason", "use neoforge for minecraft 1.20.2 and later",
		)
	}

	switch minecraft.Kind() {
	case domain.VersionIdeal:
		minor, _ := minecraft.Minor()
		patch, _ := minecraft.Patch()

		if minor < 7 || minor >= 10 {
			return fmt.Sprintf("%s-%s", minecraft, loader), nil
		}
		if minor == 7 && patch == 2 {
			return fmt.Sprintf("1.7.2-%s-mc172", loader), nil
		}
		return fmt.Sprintf("%s-%s-%s", minecraft, loader, minecraft), nil

	case domain.VersionGeneral:
		minor, ok := minecraft.Minor()
		if !ok {
			return "", zerr.With(domain.ErrInvalidGameVersion, "minecraft_version", minecraft.String())
		}

		if minor >= 9 && minor < 11 {
			cmp, err := domain.CompareBuilds(loader, loaderCutoffTriple)
			if err != nil {
				return "", err
			}
			if cmp >= 0 {
				return fmt.Sprintf("%s-%s-%s.0", minecraft, loader, minecraft), nil
			}
		}
		if minor == 9 {
			cmp, err := domain.CompareBuilds(loader, loaderCutoffDouble)
			if err != nil {
				return "", err
			}
			if cmp <= 0 {
				return fmt.Sprintf("%s-%s-%s", minecraft, loader, minecraft), nil
			}
		}
		return fmt.Sprintf("%s-%s", minecraft, loader), nil

	default:
		// The only release in range with a non-numeric version string.
		return fmt.Sprintf("1.7.10_pre4-%s-prerelease", loader), nil
	}
}
