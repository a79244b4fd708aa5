package sx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Kind is a category type for nodes.
type Kind uint8

// Node kinds. All kinds except ExprKind denote leaves.
const (
	NoKind Kind = iota
	SymbolKind
	IntKind
	FloatKind
	StringKind
	BoolKind
	NothingKind
	FuncKind
	ExprKind
)

var kindNames = [...]string{"<none>", "symbol", "int", "float", "string", "bool",
	"nothing", "func", "expr"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<invalid>"
}

// Node is the type for all nodes of a homogenous syntax tree.
type Node interface {
	Kind() Kind
	String() string
}

// --- Leaves ----------------------------------------------------------------

// Sym is an identifier or operator symbol.
type Sym string

// Kind is part of interface Node.
func (s Sym) Kind() Kind { return SymbolKind }

// String returns the symbol's text. Symbols which would read back as something
// else (literals, numbers, text with delimiters or white space) are written in
// escaped form, as a hash sign followed by a quoted string:
//
//    #"nothing"   #"a b"   #"12"
//
func (s Sym) String() string {
	if needsEscape(string(s)) {
		return "#" + strconv.Quote(string(s))
	}
	return string(s)
}

// Reserved words of the text form. Symbols spelled like one of them are escaped.
var reserved = map[string]bool{
	"true": true, "false": true, "nothing": true,
	"Inf": true, "+Inf": true, "-Inf": true, "NaN": true,
}

var numberLike = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func needsEscape(s string) bool {
	if s == "" || reserved[s] || numberLike.MatchString(s) {
		return true
	}
	for _, r := range s {
		if !strconv.IsPrint(r) || unicode.IsSpace(r) || strings.ContainsRune(`()";`, r) {
			return true
		}
	}
	return false
}

// Int is an integer literal.
type Int int64

// Kind is part of interface Node.
func (i Int) Kind() Kind { return IntKind }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a floating point literal.
type Float float64

// Kind is part of interface Node.
func (f Float) Kind() Kind { return FloatKind }

// String always produces a decimal point or exponent, so floats are not
// mistaken for integers when read back in. Infinities and NaN are written as
// Inf, -Inf and NaN.
func (f Float) String() string {
	switch x := float64(f); {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

// Str is a string literal.
type Str string

// Kind is part of interface Node.
func (s Str) Kind() Kind { return StringKind }

func (s Str) String() string { return strconv.Quote(string(s)) }

// Bool is a boolean literal.
type Bool bool

// Kind is part of interface Node.
func (b Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Nothing is the literal denoting an absent value.
type Nothing struct{}

// Kind is part of interface Node.
func (Nothing) Kind() Kind { return NothingKind }

func (Nothing) String() string { return "nothing" }

// FuncRef is a reference to a live Go function, embedded into a tree by a code
// generator. Name is optional; if it is empty, clients may recover a name by
// reflection (see package pretty).
type FuncRef struct {
	Name string
	Fn   interface{}
}

// Kind is part of interface Node.
func (f FuncRef) Kind() Kind { return FuncKind }

func (f FuncRef) String() string {
	if f.Name == "" {
		return "<func>"
	}
	return "<func " + f.Name + ">"
}

// --- Compound expressions --------------------------------------------------

// Expr is a compound expression: a head tag with an ordered sequence of children.
// Exprs are never modified after construction.
type Expr struct {
	Head Head
	Args []Node
}

// E creates a compound expression. The argument slice is copied.
func E(head Head, args ...Node) *Expr {
	var a []Node
	if len(args) > 0 {
		a = make([]Node, len(args))
		copy(a, args)
	}
	return &Expr{Head: head, Args: a}
}

// Kind is part of interface Node.
func (e *Expr) Kind() Kind { return ExprKind }

// Len returns the number of children.
func (e *Expr) Len() int {
	return len(e.Args)
}

// Arg returns child #i, or nil if i is out of range.
func (e *Expr) Arg(i int) Node {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

// WithArgs creates a new expression with e's head and a copy of args.
func (e *Expr) WithArgs(args []Node) *Expr {
	return E(e.Head, args...)
}

func (e *Expr) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(e.Head.text())
	for _, a := range e.Args {
		b.WriteByte(' ')
		if a == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Compile time checks
var _ Node = Sym("")
var _ Node = Int(0)
var _ Node = Float(0)
var _ Node = Str("")
var _ Node = Bool(false)
var _ Node = Nothing{}
var _ Node = FuncRef{}
var _ Node = (*Expr)(nil)
