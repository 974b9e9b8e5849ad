package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Dependency is a module the binary was linked against.
type Dependency struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Info describes the running binary.
type Info struct {
	Version      string       `json:"version"`
	GitCommit    string       `json:"git_commit,omitempty"`
	BuildTime    string       `json:"build_time,omitempty"`
	GoVersion    string       `json:"go_version"`
	Module       string       `json:"module,omitempty"`
	IsDirty      bool         `json:"is_dirty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// Get returns build information for the running binary.
func Get() *Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuildInfo(bi)
}

// fromBuildInfo merges ldflags values with toolchain-embedded data. bi may
// be nil.
func fromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if bi == nil {
		return info
	}

	info.GoVersion = bi.GoVersion
	info.Module = bi.Main.Path
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(setting.Value)
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if _, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	for _, dep := range bi.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}
		info.Dependencies = append(info.Dependencies, Dependency{Path: dep.Path, Version: dep.Version})
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Short returns "version[-commit][-dirty]".
func (i *Info) Short() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.IsDirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// String renders the info for a -version flag, listing dependencies whose
// path starts with one of prefixes.
func (i *Info) String(prefixes ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", orDefault(i.Module, "seqkit"), i.Short())
	if i.GoVersion != "" {
		fmt.Fprintf(&b, " (%s)", i.GoVersion)
	}
	if i.BuildTime != "" {
		fmt.Fprintf(&b, " built %s", i.BuildTime)
	}
	for _, dep := range i.Dependencies {
		for _, p := range prefixes {
			if strings.HasPrefix(dep.Path, p) {
				fmt.Fprintf(&b, "\n  %s %s", dep.Path, dep.Version)
				break
			}
		}
	}
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
