package fp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/sxtools/sx"
)

// A TreeNode represents a node met during a traversal, together with its parent
// expression and its index within the parent's children (-1 for the root).
type TreeNode struct {
	Node   sx.Node
	Parent *sx.Expr
	Index  int
}

func (n TreeNode) String() string {
	if n.Node == nil {
		return "<nil>"
	}
	return n.Node.String()
}

// Direction is a flag for tree traversal, either depth-first post-order or
// top-down pre-order.
type Direction int

// Flags for tree traversal
const (
	DepthFirstDir Direction = iota
	TopDownDir
)

// TreeSeq is a type which represents a tree walk as a sequence.
// Sequences are lazy: nodes are visited only as far as the client fetches them.
//
// Usage:
//
//    for node, S := fp.Traverse(tree, fp.TopDownDir).First(); !S.Done(); node = S.Next() {
//        …
//    }
//
type TreeSeq struct {
	node TreeNode
	gen  TreeGenerator
}

// TreeGenerator is a generator function type to iterate over trees. It returns
// false after the last node.
type TreeGenerator func() (TreeNode, bool)

func newSeq(gen TreeGenerator) TreeSeq {
	node, ok := gen()
	if !ok {
		return TreeSeq{}
	}
	return TreeSeq{node: node, gen: gen}
}

// Traverse creates a sequence from a tree. The sequence traverses the tree either in
// depth-first post-order or in top-down pre-order. Children are visited left to
// right in both directions. For the tree
//
//    (call f (call g x y) (call h z))
//
// a depth-first traversal will yield
//
//    f g x y (call g x y) h z (call h z) (call f …)
//
// whereas a top-down traversal yields
//
//    (call f …) f (call g x y) g x y (call h z) h z
func Traverse(n sx.Node, dir Direction) TreeSeq {
	if n == nil {
		return TreeSeq{}
	}
	root := TreeNode{Node: n, Index: -1}
	if dir == TopDownDir {
		return newSeq(topDown(root))
	}
	return newSeq(depthFirst(root))
}

func topDown(root TreeNode) TreeGenerator {
	stack := arraystack.New()
	stack.Push(root)
	return func() (TreeNode, bool) {
		top, ok := stack.Pop()
		if !ok {
			return TreeNode{}, false
		}
		tn := top.(TreeNode)
		if e, ok := tn.Node.(*sx.Expr); ok && e != nil {
			for i := len(e.Args) - 1; i >= 0; i-- { // push children in reverse order
				stack.Push(TreeNode{Node: e.Args[i], Parent: e, Index: i})
			}
		}
		return tn, true
	}
}

// frame is a stack entry for depth-first traversal: a node and the index of the
// next child to descend to.
type frame struct {
	tn   TreeNode
	next int
}

func depthFirst(root TreeNode) TreeGenerator {
	stack := arraystack.New()
	stack.Push(&frame{tn: root})
	return func() (TreeNode, bool) {
		for {
			top, ok := stack.Peek()
			if !ok {
				return TreeNode{}, false
			}
			f := top.(*frame)
			if e, ok := f.tn.Node.(*sx.Expr); ok && e != nil && f.next < len(e.Args) {
				child := TreeNode{Node: e.Args[f.next], Parent: e, Index: f.next}
				f.next++
				stack.Push(&frame{tn: child})
				continue
			}
			stack.Pop()
			return f.tn, true
		}
	}
}

// Break stops a traversing sequence.
func (seq *TreeSeq) Break() {
	seq.gen = nil
}

// Done returns true if a traversing sequence is stopped.
func (seq *TreeSeq) Done() bool {
	return seq.gen == nil
}

// First returns the first node of a tree traversal, together with the sequence.
func (seq TreeSeq) First() (TreeNode, TreeSeq) {
	return seq.node, seq
}

// Next returns the next node of a tree traversal.
func (seq *TreeSeq) Next() TreeNode {
	if seq.Done() {
		return TreeNode{}
	}
	node, ok := seq.gen()
	if !ok {
		seq.gen = nil
		seq.node = TreeNode{}
		return seq.node
	}
	seq.node = node
	return node
}

// List returns all the remaining nodes of a tree walk as a slice.
func (seq TreeSeq) List() []sx.Node {
	var nodes []sx.Node
	for node, S := seq.First(); !S.Done(); node = S.Next() {
		nodes = append(nodes, node.Node)
	}
	return nodes
}

// --- Filters and mappers ---------------------------------------------------

// A NodeFilter filters nodes from a sequence of tree traversal nodes.
type NodeFilter func(node TreeNode) bool

// IsLeaf is a filter for tree nodes which only accepts leaf nodes.
func IsLeaf() NodeFilter {
	return func(node TreeNode) bool {
		return !sx.IsCompound(node.Node)
	}
}

// EqualTo is a filter accepting nodes equal to a target node.
func EqualTo(target sx.Node) NodeFilter {
	return func(node TreeNode) bool {
		return sx.Equal(node.Node, target)
	}
}

// HasShape is a filter accepting nodes matching any of a list of shapes.
func HasShape(shapes ...sx.Shape) NodeFilter {
	return func(node TreeNode) bool {
		return sx.HeadIs(node.Node, shapes...)
	}
}

// Where applies a filter to a sequence of tree nodes.
func (seq TreeSeq) Where(filt NodeFilter) TreeSeq {
	if seq.Done() {
		return seq
	}
	inner, first := seq, true
	return newSeq(func() (TreeNode, bool) {
		node := inner.node
		if first {
			first = false
		} else {
			node = inner.Next()
		}
		for !inner.Done() {
			if filt(node) {
				return node, true
			}
			node = inner.Next()
		}
		return TreeNode{}, false
	})
}

// NodeMapper is a function returning a tree node from an input tree node.
type NodeMapper func(node TreeNode) TreeNode

// Print prints a node to the tracer and returns the input node.
func Print() NodeMapper {
	return func(node TreeNode) TreeNode {
		tracer().Debugf("tree node = %s", node)
		return node
	}
}

// Map applies a mapper to all elements of a sequence of tree nodes.
func (seq TreeSeq) Map(mapper NodeMapper) TreeSeq {
	if seq.Done() {
		return seq
	}
	inner, first := seq, true
	return newSeq(func() (TreeNode, bool) {
		node := inner.node
		if first {
			first = false
		} else {
			node = inner.Next()
		}
		if inner.Done() {
			return TreeNode{}, false
		}
		return mapper(node), true
	})
}
