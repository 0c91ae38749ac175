// Package version exposes build metadata injected at link time:
//
//	go build -ldflags "-X github.com/shelfstack/bookstore/internal/version.version=v1.2.3 ..."
package version

// set via ldflags by the release build; defaults cover plain `go build`
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// Info holds the build metadata for the running binary.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// Get returns the build metadata.
func Get() Info {
	return Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
}
