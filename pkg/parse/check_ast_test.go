package parse

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AST checking utilities used by parse tests.

// ast specifies an AST to check against. The name part identifies the type of
// the Node, e.g. "Program". The fields part specifies fields to check; see
// the doc of fs.
//
// When a Node contains exactly one child, it can be coalesced with the child
// by writing "/ChildName" in the name part: "Program/Expression" specifies a
// Program whose single child is an Expression, and the fields then apply to
// the Expression. Multiple levels of coalescence are allowed.
type ast struct {
	name   string
	fields fs
}

// fs specifies fields of a Node to check. For each key $f, the value of the
// field $f in the Node is checked against fs[$f] as follows:
//
//   - If the wanted value is nil, the field must be nil.
//   - If the field is a Node, the wanted value must be an ast (checked
//     recursively) or a string (checked against the source text of the node).
//   - If the field is a slice of Nodes, the wanted value must be a slice,
//     with elements checked pairwise as above.
//   - Any other field is checked with reflect.DeepEqual.
//
// Exported fields not specified in fs must have the zero value of their type.
type fs map[string]any

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

// checkAST checks an AST against a specification.
func checkAST(n Node, want ast) error {
	wantNames := strings.Split(want.name, "/")
	// Resolve coalesced levels.
	for i, wantName := range wantNames {
		name := reflect.TypeOf(n).Elem().Name()
		if wantName != name {
			return fmt.Errorf("want %s, got %s (%s)", wantName, name, summary(n))
		}
		if i == len(wantNames)-1 {
			break
		}
		children := Children(n)
		if len(children) != 1 {
			return fmt.Errorf("want exactly 1 child, got %d (%s)", len(children), summary(n))
		}
		n = children[0]
	}

	ntype := reflect.TypeOf(n).Elem()
	nvalue := reflect.ValueOf(n).Elem()

	for i := 0; i < ntype.NumField(); i++ {
		fieldName := ntype.Field(i).Name
		if !exported(fieldName) {
			continue
		}
		got := nvalue.Field(i).Interface()
		want, ok := want.fields[fieldName]
		if ok {
			err := checkField(got, want, "field "+fieldName+" of: "+summary(n))
			if err != nil {
				return err
			}
		} else {
			// Unspecified fields must be zero.
			zero := reflect.Zero(reflect.TypeOf(got)).Interface()
			if !reflect.DeepEqual(got, zero) {
				return fmt.Errorf("want %v, got %v (field %s of: %s)",
					zero, got, fieldName, summary(n))
			}
		}
	}

	return nil
}

func checkField(got any, want any, ctx string) error {
	if want == nil {
		if !reflect.ValueOf(got).IsNil() {
			return fmt.Errorf("want nil, got %v (%s)", got, ctx)
		}
		return nil
	}

	if got, ok := got.(Node); ok {
		return checkNodeInField(got, want)
	}
	tgot := reflect.TypeOf(got)
	if tgot.Kind() == reflect.Slice && tgot.Elem().Implements(nodeType) {
		vgot := reflect.ValueOf(got)
		vwant := reflect.ValueOf(want)
		if vgot.Len() != vwant.Len() {
			return fmt.Errorf("want %d elements, got %d (%s)", vwant.Len(), vgot.Len(), ctx)
		}
		for i := 0; i < vgot.Len(); i++ {
			err := checkNodeInField(vgot.Index(i).Interface().(Node),
				vwant.Index(i).Interface())
			if err != nil {
				return err
			}
		}
		return nil
	}

	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("want %v, got %v (%s)", want, got, ctx)
	}
	return nil
}

func checkNodeInField(got Node, want any) error {
	switch want := want.(type) {
	case string:
		if text := SourceText(got); want != text {
			return fmt.Errorf("want %q, got %q (%s)", want, text, summary(got))
		}
		return nil
	case ast:
		return checkAST(got, want)
	default:
		panic(fmt.Sprintf("bad want type %T (%s)", want, summary(got)))
	}
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
