package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the release identifier of the hari binary. It is overridden at
// build time with -ldflags "-X github.com/hari-data/hari/internal/version.Version=...".
var Version = "0.1.0"

func Current() string {
	return Version
}

// Validate reports whether v is a strict semantic version (MAJOR.MINOR.PATCH).
func Validate(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("invalid semantic version %q: %w", v, err)
	}
	return nil
}
