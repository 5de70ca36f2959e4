// Package version exposes build metadata for the scriptsync binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// AppName of the application
	AppName = "scriptsync"

	// Version of the application, overridable via ldflags on release builds
	Version = "0.3.0-dev"

	// Revision is the git commit the binary was built from
	Revision = "HEAD"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return
	}

	if Version == "0.3.0-dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = strings.TrimPrefix(v, "v")
		}
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" && Revision == "HEAD" {
			Revision = s.Value
			if len(Revision) > 8 {
				Revision = Revision[:8]
			}
		}
	}
}

// Short returns a concise version string - `0.3.0 (5e23a4f1)`
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}

// Detailed returns the version with toolchain and platform info.
func Detailed() string {
	return fmt.Sprintf("%s (%s; %s; %s/%s)", Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
