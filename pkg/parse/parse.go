// Package parse implements parsing of bracken code into a syntax tree.
//
// The tree is a hybrid of an AST and a parse tree. The AST part only keeps
// what is semantically significant, and is embodied in the exported fields of
// each node type. The parse tree part covers all of the original source text,
// whitespace included, and is embodied in the children of each node.
//
// The grammar is deliberately small. A program is a sequence of expressions;
// an expression is a bracket-delimited group of phrases; a phrase is either a
// nested expression or one of four kinds of leaves:
//
//	program    = { Space } { Expression { Space } }
//	Expression = '[' { Phrase } ']' | '{' { Phrase } '}' | '(' { Phrase } ')'
//	           | Phrase                  (a bare leaf, wrapped as Null)
//	Phrase     = Expression | identifier | text | number | comment
package parse

import (
	"bytes"
	"unicode"

	"github.com/bracklang/bracken/pkg/diag"
)

// Tree represents a parsed tree.
type Tree struct {
	Root   *Program
	Source Source
}

// Parse parses the given source as a program. The returned error is nil or
// contains one or more [Error] values, retrievable with [UnpackErrors]. When
// the error is not nil the tree does not represent the whole input and should
// be discarded.
func Parse(src Source) (Tree, error) {
	tree := Tree{&Program{}, src}
	err := ParseAs(src, tree.Root)
	return tree, err
}

// ParseAs parses the given source as a node, depending on the dynamic type of
// n. The whole source must be consumed; trailing unparseable input is an
// error.
func ParseAs(src Source, n Node) error {
	ps := &parser{srcName: src.Name, src: src.Code}
	parse(ps, n)
	ps.done()
	return ps.assembleError()
}

// Errors.
var (
	errShouldBePhrase   = newError("", "phrase")
	errShouldBeRBracket = newError("", "']'")
	errShouldBeRBrace   = newError("", "'}'")
	errShouldBeRParen   = newError("", "')'")
)

// Program = { Space } { Expression { Space } }
type Program struct {
	node
	Expressions []*Expression
}

func (pn *Program) parse(ps *parser) {
	parseSpaces(pn, ps)
	for startsPhrase(ps.peek()) {
		parse(ps, &Expression{}).addTo(&pn.Expressions, pn)
		parseSpaces(pn, ps)
	}
}

// ExprKind identifies the delimiter family of an Expression.
type ExprKind int

// Possible values for ExprKind.
const (
	BadExpr ExprKind = iota
	// List is an expression delimited by [ and ].
	List
	// Block is an expression delimited by { and }.
	Block
	// Item is an expression delimited by ( and ).
	Item
	// Null wraps a single leaf phrase that appears where an expression is
	// expected, so that a program is a uniform sequence of expressions. Most
	// commonly the leaf is a top-level comment.
	Null
)

// Expression = '[' { Space } { Phrase { Space } } ']'
//            | '{' { Space } { Phrase { Space } } '}'
//            | '(' { Space } { Phrase { Space } } ')'
//            | Phrase
type Expression struct {
	node
	Kind    ExprKind
	Phrases []*Phrase
}

func (en *Expression) parse(ps *parser) {
	parseSpaces(en, ps)
	r := ps.peek()
	switch r {
	case '[':
		en.Kind = List
	case '{':
		en.Kind = Block
	case '(':
		en.Kind = Item
	default:
		// A leaf phrase in expression position. Parse it as the only child
		// of a Null expression; Phrase.parse reports the error if nothing
		// parseable starts here either.
		en.Kind = Null
		parse(ps, &Phrase{}).addTo(&en.Phrases, en)
		return
	}
	ps.next()
	addSep(en, ps)

	parseSpaces(en, ps)
	// A rune that starts no phrase ends the children; whether it is the
	// correct closing delimiter is decided below.
	for startsPhrase(ps.peek()) {
		parse(ps, &Phrase{}).addTo(&en.Phrases, en)
		parseSpaces(en, ps)
	}

	switch en.Kind {
	case List:
		if !parseSep(en, ps, ']') {
			ps.error(errShouldBeRBracket)
		}
	case Block:
		if !parseSep(en, ps, '}') {
			ps.error(errShouldBeRBrace)
		}
	case Item:
		if !parseSep(en, ps, ')') {
			ps.error(errShouldBeRParen)
		}
	}
}

// PhraseType is the type of a Phrase.
type PhraseType int

// Possible values for PhraseType.
const (
	BadPhrase PhraseType = iota
	// Expr is a nested expression, stored in the Expr field.
	Expr
	// Identifier is a bare word of ASCII letters, digits and underscores.
	Identifier
	// Text is a double-quoted string. The quotes are not part of the value;
	// escape sequences are kept exactly as written, not interpreted.
	Text
	// Number is a run of ASCII digits with at most one decimal point.
	Number
	// Comment is the body of a ; comment, without the ; or the line break.
	Comment
)

// Phrase is the smallest syntactic unit: a nested expression or a leaf.
//
// Phrase = Expression | identifier | text | number | comment
type Phrase struct {
	node
	Type PhraseType
	// The text of a leaf phrase. Valid for Identifier, Text, Number and
	// Comment.
	Value string
	// The nested expression. Valid for Expr.
	Expr *Expression
}

func (phn *Phrase) parse(ps *parser) {
	r := ps.peek()
	switch {
	case r == '(' || r == '[' || r == '{':
		phn.Type = Expr
		parse(ps, &Expression{}).addAs(&phn.Expr, phn)
	case r == '"':
		phn.text(ps)
	case r == ';':
		phn.comment(ps)
	case isDigit(r):
		phn.number(ps)
	case isAlpha(r):
		phn.identifier(ps)
	default:
		ps.error(errShouldBePhrase)
	}
}

// startsPhrase reports whether a phrase may start with the rune. If it
// returns false, Phrase.parse on the same position would report an error;
// callers collecting phrases use it as the explicit stopping condition.
func startsPhrase(r rune) bool {
	return r == '(' || r == '[' || r == '{' ||
		r == '"' || r == ';' || isDigit(r) || isAlpha(r)
}

// Parses a double-quoted text leaf. The escape character is kept in the
// value, along with the character after it, whatever it is; resolving escape
// sequences is left to consumers of the tree. A missing closing quote is not
// an error: the text simply runs to the end of the input.
func (phn *Phrase) text(ps *parser) {
	phn.Type = Text
	ps.next()
	var buf bytes.Buffer
	defer func() { phn.Value = buf.String() }()
	for {
		switch r := ps.next(); r {
		case eof, '"':
			return
		case '\\':
			buf.WriteRune(r)
			if r := ps.next(); r != eof {
				buf.WriteRune(r)
			}
		default:
			buf.WriteRune(r)
		}
	}
}

// Parses a comment from the ; marker up to, but not including, the next line
// break or the end of input.
func (phn *Phrase) comment(ps *parser) {
	phn.Type = Comment
	ps.next()
	begin := ps.pos
	for {
		r := ps.peek()
		if r == eof || r == '\r' || r == '\n' {
			break
		}
		ps.next()
	}
	phn.Value = ps.src[begin:ps.pos]
}

// Parses a number: a maximal run of digits containing at most one decimal
// point. A second point ends the run and is left unconsumed; since nothing
// else parses a bare point, it then surfaces as an "unexpected rune" error.
func (phn *Phrase) number(ps *parser) {
	phn.Type = Number
	begin := ps.pos
	seenPoint := false
	for {
		r := ps.peek()
		if r == '.' && !seenPoint {
			seenPoint = true
		} else if !isDigit(r) {
			break
		}
		ps.next()
	}
	phn.Value = ps.src[begin:ps.pos]
}

// Parses an identifier: a maximal run of ASCII letters, digits and
// underscores.
func (phn *Phrase) identifier(ps *parser) {
	phn.Type = Identifier
	begin := ps.pos
	for allowedInIdentifier(ps.peek()) {
		ps.next()
	}
	phn.Value = ps.src[begin:ps.pos]
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func allowedInIdentifier(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

// IsWhitespace reports whether r separates phrases. Any Unicode whitespace
// does.
func IsWhitespace(r rune) bool {
	return r != eof && unicode.IsSpace(r)
}

// Sep is the catch-all node type for leaf nodes that lack internal structure
// and semantics, and serve solely for syntactic purposes: delimiters and
// whitespace. The parsing of separators depends on the parent node, so Sep
// lacks a genuine parse method.
type Sep struct {
	node
}

// NewSep makes a new Sep.
func NewSep(src string, begin, end int) *Sep {
	return &Sep{node: node{diag.Ranging{From: begin, To: end}, src[begin:end], nil, nil}}
}

func (*Sep) parse(*parser) {
	// A no-op, only to satisfy the Node interface.
}

func addSep(n Node, ps *parser) {
	var begin int
	ch := Children(n)
	if len(ch) > 0 {
		begin = ch[len(ch)-1].Range().To
	} else {
		begin = n.Range().From
	}
	if begin < ps.pos {
		addChild(n, NewSep(ps.src, begin, ps.pos))
	}
}

func parseSep(n Node, ps *parser, sep rune) bool {
	if ps.peek() == sep {
		ps.next()
		addSep(n, ps)
		return true
	}
	return false
}

func parseSpaces(n Node, ps *parser) {
	for IsWhitespace(ps.peek()) {
		ps.next()
	}
	addSep(n, ps)
}
