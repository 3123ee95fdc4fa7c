package parse

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

const (
	maxL      = 10
	maxR      = 10
	indentInc = 2
)

func (k ExprKind) String() string {
	switch k {
	case List:
		return "List"
	case Block:
		return "Block"
	case Item:
		return "Item"
	case Null:
		return "Null"
	default:
		return "BadExpr"
	}
}

func (t PhraseType) String() string {
	switch t {
	case Expr:
		return "Expr"
	case Identifier:
		return "Identifier"
	case Text:
		return "Text"
	case Number:
		return "Number"
	case Comment:
		return "Comment"
	default:
		return "BadPhrase"
	}
}

// PprintAST pretty-prints the AST part of a node to a writer: one line per
// node, with separators and nested expression wrappers elided.
func PprintAST(n Node, w io.Writer) {
	pprintAST(n, w, 0)
}

func pprintAST(n Node, w io.Writer, indent int) {
	switch n := n.(type) {
	case *Program:
		fmt.Fprintf(w, "%*sProgram\n", indent, "")
		for _, en := range n.Expressions {
			pprintAST(en, w, indent+indentInc)
		}
	case *Expression:
		fmt.Fprintf(w, "%*sExpression Kind=%v\n", indent, "", n.Kind)
		for _, phn := range n.Phrases {
			pprintAST(phn, w, indent+indentInc)
		}
	case *Phrase:
		if n.Type == Expr {
			pprintAST(n.Expr, w, indent)
		} else {
			fmt.Fprintf(w, "%*sPhrase Type=%v Value=%s\n",
				indent, "", n.Type, strconv.Quote(n.Value))
		}
	}
}

// PprintParseTree pretty-prints the parse tree part of a node to a writer:
// every node with its type, abbreviated source text and range, including
// separators. Runs of nodes with a single child are printed on one line.
func PprintParseTree(n Node, w io.Writer) {
	pprintParseTree(n, w, 0)
}

func pprintParseTree(n Node, w io.Writer, indent int) {
	leading := ""
	for len(Children(n)) == 1 {
		leading += reflect.TypeOf(n).Elem().Name() + "/"
		n = Children(n)[0]
	}
	fmt.Fprintf(w, "%*s%s%s\n", indent, "", leading, summary(n))
	for _, ch := range Children(n) {
		pprintParseTree(ch, w, indent+indentInc)
	}
}

func summary(n Node) string {
	return fmt.Sprintf("%s %s %d-%d", reflect.TypeOf(n).Elem().Name(),
		compactQuote(SourceText(n)), n.Range().From, n.Range().To)
}

func compactQuote(text string) string {
	if len(text) > maxL+maxR+3 {
		text = text[0:maxL] + "..." + text[len(text)-maxR:]
	}
	return strconv.Quote(text)
}
