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

// RmLines removes line markers from the children of a single compound node.
// The second child of a macro call is a positional source argument and is kept.
func RmLines(n sx.Node) sx.Node {
	e, ok := sx.AsExpr(n)
	if !ok {
		return n
	}
	found := false
	for i, a := range e.Args {
		if sx.IsLineMarker(a) && !isMacroLine(e, i) {
			found = true
			break
		}
	}
	if !found {
		return n
	}
	args := make([]sx.Node, 0, len(e.Args))
	for i, a := range e.Args {
		if sx.IsLineMarker(a) && !isMacroLine(e, i) {
			continue
		}
		args = append(args, a)
	}
	return e.WithArgs(args)
}

func isMacroLine(e *sx.Expr, i int) bool {
	return e.Head == sx.MacroCall && i == 1
}

// StripLines removes all line markers from a tree. A tree consisting of nothing
// but a line marker becomes an empty block.
func StripLines(tree sx.Node) sx.Node {
	if sx.IsLineMarker(tree) {
		return sx.E(sx.Block)
	}
	return fp.Postwalk(RmLines, tree)
}
