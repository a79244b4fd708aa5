package sx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools"
)

// Shape is a predicate on nodes. Both Head and Kind are shapes: a head matches
// compound expressions with this head, a kind matches nodes of this kind.
type Shape interface {
	Matches(Node) bool
}

// Matches is true if n is a compound expression with head h.
func (h Head) Matches(n Node) bool {
	e, ok := n.(*Expr)
	return ok && e != nil && e.Head == h
}

// Matches is true if n is of kind k.
func (k Kind) Matches(n Node) bool {
	return n != nil && n.Kind() == k
}

// IsCompound is true for compound expressions.
func IsCompound(n Node) bool {
	e, ok := n.(*Expr)
	return ok && e != nil
}

// HeadIs checks a node against a list of shapes and returns true if any of them
// matches. The same call therefore answers "is n a compound with head h" and "is
// n a leaf of kind k":
//
//    HeadIs(n, Call, Curly)       // n is a call or a curly-expression
//    HeadIs(n, SymbolKind, Decl)  // n is a symbol or an x::T annotation
//
func HeadIs(n Node, shapes ...Shape) bool {
	for _, s := range shapes {
		if s.Matches(n) {
			return true
		}
	}
	return false
}

// AsExpr returns n as a compound expression with one of the given heads. If n is not a
// compound, or has a different head, ok is false. With no heads given, any
// compound is accepted.
func AsExpr(n Node, heads ...Head) (e *Expr, ok bool) {
	if e, ok = n.(*Expr); !ok || e == nil {
		return nil, false
	}
	if len(heads) == 0 {
		return e, true
	}
	for _, h := range heads {
		if e.Head == h {
			return e, true
		}
	}
	return nil, false
}

// --- Line markers ----------------------------------------------------------

// NewLineMarker creates a line-marker node for a source position.
//
//    (line-marker 12 "lib.sx")
//
func NewLineMarker(pos sxtools.Position) *Expr {
	return E(Line, Int(pos.Line), Str(pos.File))
}

// IsLineMarker is a predicate for line-marker nodes.
func IsLineMarker(n Node) bool {
	return Line.Matches(n)
}

// LinePosition extracts the source position of a line-marker. Returns false if n is
// not a line-marker, or if the marker carries neither a line number nor a file.
func LinePosition(n Node) (sxtools.Position, bool) {
	e, ok := AsExpr(n, Line)
	if !ok {
		return sxtools.Position{}, false
	}
	var pos sxtools.Position
	if l, ok := e.Arg(0).(Int); ok {
		pos.Line = int(l)
	}
	if f, ok := e.Arg(1).(Str); ok {
		pos.File = string(f)
	}
	return pos, !pos.IsNull()
}

// --- Names -----------------------------------------------------------------

// Namify pulls a bare name out of a parameterized or qualified name expression,
// by descending into first children until a leaf is reached:
//
//    Foo                           =>  Foo
//    (curly Foo T)                 =>  Foo
//    (<: (curly Base T) Vector)    =>  Base
//
// A compound without children has no name. Namify considers this a contract
// violation by the caller and panics with a *TreeError.
func Namify(n Node) Node {
	for {
		e, ok := n.(*Expr)
		if !ok {
			return n
		}
		if e == nil || len(e.Args) == 0 {
			tracer().Errorf("cannot namify %v", n)
			panic(&TreeError{Node: n, Msg: "namify of expression without children"})
		}
		n = e.Args[0]
	}
}
