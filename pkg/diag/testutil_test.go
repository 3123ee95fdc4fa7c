package diag

import (
	"strings"
	"testing"

	"github.com/bracklang/bracken/pkg/testutil"
)

func setCulpritMarkers(t *testing.T, begin, end string) {
	testutil.Set(t, &culpritLineBegin, begin)
	testutil.Set(t, &culpritLineEnd, end)
}

func setMessageMarkers(t *testing.T, begin, end string) {
	testutil.Set(t, &messageStart, begin)
	testutil.Set(t, &messageEnd, end)
}

func lines(lines ...string) string { return strings.Join(lines, "\n") }

// Returns a Context over the given source, with the range covering the part
// between ( and ), inclusive.
func contextInParen(name, src string) *Context {
	return NewContext(name, src,
		Ranging{strings.Index(src, "("), strings.Index(src, ")") + 1})
}
