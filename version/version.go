// Package version provides build version information and a reusable version
// command.
package version

import "fmt"

// Info holds version information for a program.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

// New creates an Info with development defaults. Version, BuildDate and
// GitCommit are expected to be set via ldflags at build time.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
