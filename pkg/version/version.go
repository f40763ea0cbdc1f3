package version

import (
	"runtime/debug"
)

var (
	// Version is set at build time with -ldflags "-X".
	Version = "dev"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision.
func String() string {
	return Version + "+" + Revision
}
