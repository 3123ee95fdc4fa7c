// Bracken is a reader for a small bracket-delimited notation. It checks
// scripts for syntax errors, prints their syntax trees, and speaks the
// language server protocol for editor integration.
package main

import (
	"os"

	"github.com/bracklang/bracken/pkg/buildinfo"
	"github.com/bracklang/bracken/pkg/lsp"
	"github.com/bracklang/bracken/pkg/prog"
	"github.com/bracklang/bracken/pkg/read"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &lsp.Program{}, &read.Program{})))
}
