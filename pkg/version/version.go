package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info is the build metadata of a binary
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Revision  string `json:"revision,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
	UserAgent string `json:"user_agent"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

const revisionLen = 12

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Build returns the metadata for the named executable
func Build(execName string) Info {
	info := Info{
		Name:     execName,
		Tag:      GitTag,
		Branch:   GitBranch,
		Compiler: runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		info.Source = build.Main.Path
		for _, s := range build.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.time":
				info.BuildTime = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	// Tag, then branch, then a short revision
	switch {
	case info.Tag != "":
		info.Version = info.Tag
	case info.Branch != "":
		info.Version = info.Branch
	case info.Revision != "":
		info.Version = info.Revision[:min(revisionLen, len(info.Revision))]
	default:
		info.Version = "dev"
	}
	info.UserAgent = fmt.Sprintf("%s/%s (%s; %s)", execName, info.Version, info.Compiler, info.Platform)
	return info
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (i Info) String() string {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or revision the binary was built from
func Version() string {
	return Build("").Version
}

// UserAgent returns the user agent sent with requests to the orchestrator
func UserAgent(execName string) string {
	return Build(execName).UserAgent
}
