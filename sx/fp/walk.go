package fp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
)

// A Mapper represents an operation on a node, resulting in a (possibly) new node.
type Mapper func(sx.Node) sx.Node

// A MapperE is a mapper which may fail.
type MapperE func(sx.Node) (sx.Node, error)

// Identity is the mapper returning its input.
func Identity(n sx.Node) sx.Node {
	return n
}

// Walk is the generic one-level walk all rewriting walks are built on.
// For a compound expression it maps every child with inner, rebuilds the expression
// with the mapped children and returns outer of the result. A leaf is passed to
// outer directly.
//
// Walk does not know about any specific head tag.
func Walk(n sx.Node, inner, outer Mapper) sx.Node {
	e, ok := n.(*sx.Expr)
	if !ok || e == nil {
		return outer(n)
	}
	args := make([]sx.Node, len(e.Args))
	for i, a := range e.Args {
		args[i] = inner(a)
	}
	return outer(&sx.Expr{Head: e.Head, Args: args})
}

// Postwalk rewrites a tree bottom-up. Every node's children are rewritten first,
// then f is applied to the rebuilt node; f therefore always observes
// already-rewritten sub-trees.
func Postwalk(f Mapper, n sx.Node) sx.Node {
	return Walk(n, func(child sx.Node) sx.Node {
		return Postwalk(f, child)
	}, f)
}

// Prewalk rewrites a tree top-down. f is applied to a node first, then Prewalk
// descends into the children of whatever f returned.
//
// As f's output is subject to further rewriting, Prewalk will not terminate if f
// keeps producing nodes containing its own input pattern. Preventing this is the
// responsibility of the caller.
func Prewalk(f Mapper, n sx.Node) sx.Node {
	return Walk(f(n), func(child sx.Node) sx.Node {
		return Prewalk(f, child)
	}, Identity)
}

// --- Walks with errors -----------------------------------------------------

// WalkE is the failing variant of Walk. It stops at the first error.
func WalkE(n sx.Node, inner, outer MapperE) (sx.Node, error) {
	e, ok := n.(*sx.Expr)
	if !ok || e == nil {
		return outer(n)
	}
	args := make([]sx.Node, len(e.Args))
	for i, a := range e.Args {
		var err error
		if args[i], err = inner(a); err != nil {
			return n, err
		}
	}
	return outer(&sx.Expr{Head: e.Head, Args: args})
}

// PostwalkE is the failing variant of Postwalk. It stops at the first error, returning
// the input tree unchanged together with the error.
func PostwalkE(f MapperE, n sx.Node) (sx.Node, error) {
	r, err := WalkE(n, func(child sx.Node) (sx.Node, error) {
		return PostwalkE(f, child)
	}, f)
	if err != nil {
		return n, err
	}
	return r, nil
}

// PrewalkE is the failing variant of Prewalk. It stops at the first error, returning
// the input tree unchanged together with the error.
func PrewalkE(f MapperE, n sx.Node) (sx.Node, error) {
	m, err := f(n)
	if err != nil {
		return n, err
	}
	r, err := WalkE(m, func(child sx.Node) (sx.Node, error) {
		return PrewalkE(f, child)
	}, func(x sx.Node) (sx.Node, error) {
		return x, nil
	})
	if err != nil {
		return n, err
	}
	return r, nil
}
