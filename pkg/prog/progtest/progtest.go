// Package progtest provides a framework for testing subprograms.
//
// The entry point of the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the ThatBracken function, followed by
// method calls that add expectations to it, like:
//
//	ThatBracken("-version").WritesStdoutContaining("0.")
package progtest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/bracklang/bracken/pkg/must"
	"github.com/bracklang/bracken/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// ThatBracken returns a new Case with the given CLI arguments.
func ThatBracken(args ...string) Case {
	return Case{args: append([]string{"bracken"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to the
// stdin of the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations.
func (c Case) DoesNothing() Case { return c }

// ExitsWith returns an altered Case that requires the process to exit with
// the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the stdout output to be
// exactly the given text.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the stdout
// output to contain the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the stderr output to be
// exactly the given text.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the stderr
// output to contain the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", r.exit, c.want.exit)
			}
			if !c.want.stdout.match(r.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout, c.want.stdout)
			}
			if !c.want.stderr.match(r.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr, c.want.stderr)
			}
		})
	}
}

func (o output) match(got string) bool {
	if o.partial {
		return strings.Contains(got, o.content)
	}
	return got == o.content
}

type runResult struct {
	exit           int
	stdout, stderr string
}

func run(p prog.Program, args []string, stdin string) runResult {
	r0, w0 := must.Pipe()
	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()

	// Read stdout and stderr concurrently, so that the program doesn't block
	// on writing when either pipe buffer fills up.
	r1, w1 := must.Pipe()
	stdout := saveOutput(r1)
	r2, w2 := must.Pipe()
	stderr := saveOutput(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return runResult{exit, <-stdout, <-stderr}
}

func saveOutput(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}
