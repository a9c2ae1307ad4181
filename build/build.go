// Package build describes how the running binary was built. Version can be
// injected at link time:
//
//	go build -ldflags "-X github.com/amp-labs/sortedlist/build.Version=v1.2.0" ./cmd/sortedlist-repl
//
// Everything else comes from the build information the Go toolchain embeds.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
)

// Version overrides the main module version when set via -ldflags.
var Version = "" //nolint:gochecknoglobals

const develVersion = "(devel)"

// Info contains build metadata.
type Info struct {
	Version      string            `json:"version"`
	GoVersion    string            `json:"go_version"`           //nolint:tagliatelle
	GitCommit    string            `json:"git_commit,omitempty"` //nolint:tagliatelle
	GitDate      string            `json:"git_date,omitempty"`   //nolint:tagliatelle
	Modified     bool              `json:"modified,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Read returns the build information of the running binary.
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{Version: versionOr(develVersion)}
	}

	return FromBuildInfo(bi)
}

// FromBuildInfo converts toolchain build information into an Info.
func FromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   versionOr(bi.Main.Version),
		GoVersion: bi.GoVersion,
	}

	if info.Version == "" {
		info.Version = develVersion
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	if len(bi.Deps) > 0 {
		info.Dependencies = make(map[string]string, len(bi.Deps))

		for _, dep := range bi.Deps {
			info.Dependencies[dep.Path] = dep.Version
		}
	}

	return info
}

func versionOr(fallback string) string {
	if Version != "" {
		return Version
	}

	return fallback
}

// String renders the info as JSON.
func (i Info) String() string {
	data, err := json.Marshal(i)
	if err != nil {
		return i.Version
	}

	return string(data)
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 {
		return nil, false
	}

	if js == "{}" {
		return nil, false
	}

	var info Info

	err := json.Unmarshal([]byte(js), &info)
	if err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}
