package version

import "runtime/debug"

// Commit is the Git hash of the seqstat build, set with -ldflags -X.
var Commit = "<unknown>"

// Version is the seqstat release. When not set with -ldflags -X it falls back
// to the module version recorded in the build info.
var Version = "dev"

func init() {
	if Version != "dev" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, dep := range append([]*debug.Module{&info.Main}, info.Deps...) {
		if dep.Path == "github.com/Sumatoshi-tech/seqstat" && dep.Version != "" && dep.Version != "(devel)" {
			Version = dep.Version

			return
		}
	}
}
