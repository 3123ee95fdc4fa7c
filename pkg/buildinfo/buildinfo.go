// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/bracklang/bracken/pkg/buildinfo.Var=value" to
// "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/bracklang/bracken/pkg/must"
	"github.com/bracklang/bracken/pkg/prog"
)

// Version identifies the version of Bracken. On development commits, it
// identifies the next release.
const Version = "0.2.0"

// VersionSuffix is appended to Version to build the full version string. It
// is defined as a variable so that it can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Type describes the build information.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information.
var Value = Type{
	Version:   Version + VersionSuffix,
	GoVersion: runtime.Version(),
}

// Program is the buildinfo subprogram. It handles the -version and
// -buildinfo flags.
type Program struct {
	version, buildinfo bool
	json               *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNextProgram
	}
	return nil
}

func mustToJSON(v any) string {
	return string(must.OK1(json.Marshal(v)))
}
