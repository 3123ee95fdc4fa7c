package parse

import (
	"github.com/bracklang/bracken/pkg/diag"
)

// Node represents a parse tree node.
type Node interface {
	diag.Ranger
	parse(*parser)
	n() *node
}

// node is the base of all nodes. Node types embed it and get the bookkeeping
// parts of the Node interface for free.
type node struct {
	diag.Ranging
	sourceText string
	parent     Node
	children   []Node
}

func (n *node) n() *node { return n }

func (n *node) addChild(ch Node) { n.children = append(n.children, ch) }

// Parent returns the parent of a node. It returns nil if the node is the root
// of the parse tree.
func Parent(n Node) Node { return n.n().parent }

// SourceText returns the part of the source text that parses to the node.
func SourceText(n Node) string { return n.n().sourceText }

// Children returns all children of the node in the parse tree, in source
// order. The source texts of the children are contiguous and concatenate to
// the source text of the node itself.
func Children(n Node) []Node { return n.n().children }

func addChild(p Node, ch Node) {
	p.n().addChild(ch)
	ch.n().parent = p
}
