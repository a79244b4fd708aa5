package flow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/fp"
)

// Unblock collapses a block whose only statement (not counting line markers) is a
// single node, recursively:
//
//    (block (line-marker 1 "f") (block 1))  =>  1
//
// Any other node is returned unchanged.
func Unblock(n sx.Node) sx.Node {
	for {
		b, ok := sx.AsExpr(n, sx.Block)
		if !ok {
			return n
		}
		var stmt sx.Node
		count := 0
		for _, a := range b.Args {
			if !sx.IsLineMarker(a) {
				stmt = a
				count++
			}
		}
		if count != 1 {
			return n
		}
		n = stmt
	}
}

// Block wraps a node into a block, unless it already is one.
func Block(n sx.Node) sx.Node {
	if sx.HeadIs(n, sx.Block) {
		return n
	}
	return sx.E(sx.Block, n)
}

// Statements returns the statements of a block, not counting line markers.
// For a non-block node, n itself is the only statement.
func Statements(n sx.Node) []sx.Node {
	b, ok := sx.AsExpr(n, sx.Block)
	if !ok {
		return []sx.Node{n}
	}
	stmts := make([]sx.Node, 0, len(b.Args))
	for _, a := range b.Args {
		if !sx.IsLineMarker(a) {
			stmts = append(stmts, a)
		}
	}
	return stmts
}

// Flatten splices the statements of blocks nested directly within blocks into
// their parents:
//
//    (block (block 1 2) 3)  =>  (block 1 2 3)
//
// A flattened block is never replaced by its single child, use Unblock for this.
func Flatten(tree sx.Node) sx.Node {
	return fp.Postwalk(flatten1, tree)
}

func flatten1(n sx.Node) sx.Node {
	b, ok := sx.AsExpr(n, sx.Block)
	if !ok {
		return n
	}
	nested := false
	for _, a := range b.Args {
		if sx.HeadIs(a, sx.Block) {
			nested = true
			break
		}
	}
	if !nested {
		return n
	}
	args := make([]sx.Node, 0, len(b.Args))
	for _, a := range b.Args {
		if inner, ok := sx.AsExpr(a, sx.Block); ok {
			args = append(args, inner.Args...)
			continue
		}
		args = append(args, a)
	}
	tracer().Debugf("flattened block with %d children into %d", len(b.Args), len(args))
	return b.WithArgs(args)
}
