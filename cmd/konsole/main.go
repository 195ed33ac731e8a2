// Command konsole demonstrates colored output and concurrent progress bars.
package main

import (
	"fmt"
	"os"

	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/version"
)

// Set via ldflags at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	info := version.New("konsole")
	info.Version, info.BuildDate, info.GitCommit = Version, BuildDate, GitCommit

	if err := newRootCmd(konsole.Default(), info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
