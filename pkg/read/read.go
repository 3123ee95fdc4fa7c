// Package read is the entry point for the source checker of Bracken. It
// reads a script, parses it, and reports any syntax errors.
package read

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bracklang/bracken/pkg/diag"
	"github.com/bracklang/bracken/pkg/logutil"
	"github.com/bracklang/bracken/pkg/parse"
	"github.com/bracklang/bracken/pkg/prog"
	"github.com/bracklang/bracken/pkg/sys"
)

var logger = logutil.GetLogger("[read] ")

// Program is the read subprogram.
type Program struct {
	codeInArg bool
	dump      bool
	json      *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false, "take first argument as code to check")
	fs.BoolVar(&p.dump, "dump", false, "print the syntax tree of the script")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no script given")
	}
	if len(args) > 1 {
		return prog.BadUsage("too many arguments")
	}
	arg0 := args[0]

	var name, code string
	if p.codeInArg {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return prog.Exit(2)
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return prog.Exit(2)
		}
	}

	logger.Println("parsing", name)
	src := parse.Source{Name: name, Code: code, IsFile: !p.codeInArg}
	tree, err := parse.Parse(src)

	if *p.json {
		fmt.Fprintf(fds[1], "%s\n", errorsToJSON(err))
		if err != nil {
			return prog.Exit(2)
		}
	} else if err != nil {
		showError(fds[2], err)
		return prog.Exit(2)
	}

	if p.dump {
		parse.PprintAST(tree.Root, fds[1])
	}
	return nil
}

// Shows an error with diagnostics styling when stderr is a terminal, and as
// a plain message otherwise.
func showError(stderr *os.File, err error) {
	if sys.IsATTY(stderr.Fd()) {
		diag.ShowError(stderr, err)
	} else {
		fmt.Fprintln(stderr, err)
	}
}
