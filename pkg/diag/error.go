package diag

import (
	"fmt"
	"strings"

	"github.com/bracklang/bracken/pkg/strutil"
)

// Error is an error with a source context. The type parameter is only used to
// distinguish different categories of errors at the type level, so that
// [UnpackErrors] can filter on the category.
type Error[T ErrorTag] struct {
	Message string
	Context Context

	// Indicates that the error may be caused by incomplete input. The parser
	// sets this field for errors whose range starts at the end of the source.
	Partial bool
}

// ErrorTag is used to parameterize [Error] into different concrete types. The
// ErrorTag method is called with a zero receiver, and its return value is used
// as a prefix when showing the error.
type ErrorTag interface {
	ErrorTag() string
}

// Error returns a plain text representation of the error.
func (e *Error[T]) Error() string {
	var t T
	return fmt.Sprintf("%s: %d-%d in %s: %s",
		t.ErrorTag(), e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error[T]) Range() Ranging {
	return e.Context.Range()
}

// Styling of the message in Show.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Show shows the error, with the message in red and the culprit highlighted.
func (e *Error[T]) Show(indent string) string {
	var t T
	header := fmt.Sprintf("%s: %s%s%s\n",
		strutil.Title(t.ErrorTag()), messageStart, e.Message, messageEnd)
	return header + indent + "  " + e.Context.ShowCompact(indent+"  ")
}

// PackErrors packs multiple instances of [Error] with the same tag into one
// error:
//
//   - If called with no errors, it returns nil.
//   - If called with one error, it returns that error itself.
//   - If called with more than one error, it returns an error that combines
//     all of them, and can be unpacked with [UnpackErrors].
func PackErrors[T ErrorTag](errs []*Error[T]) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return multiError[T]{errs}
	}
}

// UnpackErrors returns the constituent [Error] instances in an error if it is
// built from [PackErrors]. Otherwise it returns nil.
func UnpackErrors[T ErrorTag](err error) []*Error[T] {
	switch err := err.(type) {
	case *Error[T]:
		return []*Error[T]{err}
	case multiError[T]:
		// Return a copy so that the caller may not mutate the packed slice.
		return append([]*Error[T](nil), err.errors...)
	default:
		return nil
	}
}

type multiError[T ErrorTag] struct {
	errors []*Error[T]
}

func (me multiError[T]) Error() string {
	var sb strings.Builder
	var t T
	fmt.Fprintf(&sb, "multiple %ss: ", t.ErrorTag())
	for i, e := range me.errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%d-%d in %s: %s",
			e.Context.From, e.Context.To, e.Context.Name, e.Message)
	}
	return sb.String()
}

func (me multiError[T]) Show(indent string) string {
	var sb strings.Builder
	var t T
	sb.WriteString(strutil.Title(t.ErrorTag()) + "s:")
	for _, e := range me.errors {
		sb.WriteString("\n" + indent + "  " + e.Show(indent+"  "))
	}
	return sb.String()
}
