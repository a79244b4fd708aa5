package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/sxlang"
)

type patternType uint8

const (
	anythingPat patternType = iota
	varPat
	splatPat
	literalPat
	exprPat
)

// Pattern is a structural pattern for sx nodes.
type Pattern struct {
	typ    patternType
	name   string     // variable name, empty for anonymous variables
	shapes []sx.Shape // restriction of variables, may be empty
	lit    sx.Node    // for literal patterns
	head   sx.Head    // for expression patterns
	args   []*Pattern // for expression patterns
}

// Anything is a pattern matching any node.
func Anything() *Pattern {
	return &Pattern{typ: anythingPat}
}

// AnySymbol is a pattern matching any single symbol.
func AnySymbol() *Pattern {
	return &Pattern{typ: varPat, shapes: []sx.Shape{sx.SymbolKind}}
}

// Var is a pattern variable matching any node. The name "_" denotes an anonymous
// variable, which is not bound.
func Var(name string) *Pattern {
	return Typed(name)
}

// Typed is a pattern variable which matches nodes conforming to one of the given
// shapes (see sx.HeadIs).
func Typed(name string, shapes ...sx.Shape) *Pattern {
	if name == "_" {
		name = ""
	}
	return &Pattern{typ: varPat, name: name, shapes: shapes}
}

// Splat is a pattern variable matching a sequence of zero or more children of a
// compound expression. Splat patterns are only valid as arguments of Expr patterns.
func Splat(name string) *Pattern {
	if name == "_" {
		name = ""
	}
	return &Pattern{typ: splatPat, name: name}
}

// Lit is a pattern matching nodes equal to n.
func Lit(n sx.Node) *Pattern {
	return &Pattern{typ: literalPat, lit: n}
}

// Expr is a pattern matching compound expressions with head h, where the children
// match args.
func Expr(h sx.Head, args ...*Pattern) *Pattern {
	return &Pattern{typ: exprPat, head: h, args: args}
}

func (p *Pattern) String() string {
	switch p.typ {
	case anythingPat:
		return "_"
	case varPat:
		if len(p.shapes) > 0 {
			return fmt.Sprintf("%s_::%v", p.name, p.shapes)
		}
		return p.name + "_"
	case splatPat:
		return p.name + "__"
	case literalPat:
		return p.lit.String()
	}
	var b strings.Builder
	b.WriteString("(" + p.head.Name())
	for _, a := range p.args {
		b.WriteString(" " + a.String())
	}
	b.WriteString(")")
	return b.String()
}

// --- Compiling patterns from s-expressions ---------------------------------

// Compile creates a pattern from its s-expression notation (see package
// documentation).
func Compile(source string) (*Pattern, error) {
	n, err := sxlang.Parse(source)
	if err != nil {
		return nil, err
	}
	return FromNode(n)
}

// MustCompile is like Compile, but panics if the pattern cannot be compiled.
// It simplifies initialization of rule tables.
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(fmt.Errorf("cannot compile pattern %q: %w", source, err))
	}
	return p
}

// FromNode creates a pattern from a template node.
func FromNode(n sx.Node) (*Pattern, error) {
	return fromNode(n, false)
}

var kindsByName = map[string]sx.Kind{
	"symbol":  sx.SymbolKind,
	"int":     sx.IntKind,
	"float":   sx.FloatKind,
	"string":  sx.StringKind,
	"bool":    sx.BoolKind,
	"nothing": sx.NothingKind,
	"func":    sx.FuncKind,
	"expr":    sx.ExprKind,
}

// typeMarker separates a pattern variable from a kind restriction: name_::symbol.
const typeMarker = "_::"

func fromNode(n sx.Node, inExpr bool) (*Pattern, error) {
	switch x := n.(type) {
	case *sx.Expr:
		args := make([]*Pattern, len(x.Args))
		for i, a := range x.Args {
			p, err := fromNode(a, true)
			if err != nil {
				return nil, err
			}
			args[i] = p
		}
		return Expr(x.Head, args...), nil
	case sx.Sym:
		s := string(x)
		if strings.HasSuffix(s, "__") {
			if !inExpr {
				return nil, fmt.Errorf("sequence variable %s outside of expression", s)
			}
			return Splat(strings.TrimSuffix(s, "__")), nil
		}
		if s == "_" {
			return Anything(), nil
		}
		if strings.HasSuffix(s, "_") {
			return Var(strings.TrimSuffix(s, "_")), nil
		}
		if name, kind, ok := strings.Cut(s, typeMarker); ok {
			k, found := kindsByName[kind]
			if !found {
				return nil, fmt.Errorf("unknown node kind %q in pattern variable %s", kind, s)
			}
			return Typed(name, k), nil
		}
	}
	return Lit(n), nil
}
