package defn

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/termr"
)

// AnyType is the type of arguments without type annotation.
const AnyType = sx.Sym("Any")

// Arg holds the parts of a function argument.
type Arg struct {
	Name    sx.Node // nil for unnamed arguments like (:: T)
	Type    sx.Node // AnyType if not declared
	Default sx.Node // nil if there is no default value
	Splat   bool    // argument slurps a variable number of values
}

var (
	defaultPatterns = []*termr.Pattern{
		termr.MustCompile(`(kw a_ default_)`),
		termr.MustCompile(`(= a_ default_)`),
	}
	splatPattern = termr.MustCompile(`(... a_)`)
	typeOnly     = termr.MustCompile(`(:: T_)`)
	nameAndType  = termr.MustCompile(`(:: name_ T_)`)
)

// Splitarg decomposes a function argument. Matching is tried most specific first:
//
//    (:: T)       =>  Name: nil, Type: T
//    (:: x T)     =>  Name: x,   Type: T
//    x            =>  Name: x,   Type: Any
//
// An argument of the form (kw a d) or (= a d) has default value d, with a decomposed
// as above. (... a) denotes a splat argument.
//
// A default value of nothing is rejected with an *ArgError. Default values
// which should evaluate to nothing have to be quoted.
func Splitarg(arg sx.Node) (Arg, error) {
	for _, p := range defaultPatterns {
		if b, ok := termr.Match(arg, p); ok {
			if sx.HeadIs(b.Node("default"), sx.NothingKind) {
				tracer().Errorf("ambiguous default value for argument %v", arg)
				return Arg{}, &ArgError{Node: arg}
			}
			a := splitvar(b.Node("a"))
			a.Default = b.Node("default")
			return a, nil
		}
	}
	return splitvar(arg), nil
}

func splitvar(arg sx.Node) Arg {
	if b, ok := termr.Match(arg, splatPattern); ok {
		a := splitvar(b.Node("a"))
		a.Splat = true
		return a
	}
	if b, ok := termr.Match(arg, typeOnly); ok {
		return Arg{Type: b.Node("T")}
	}
	if b, ok := termr.Match(arg, nameAndType); ok {
		return Arg{Name: b.Node("name"), Type: b.Node("T")}
	}
	return Arg{Name: arg, Type: AnyType}
}

// Combinearg builds an argument node from its parts. It is the inverse of
// Splitarg, with default values as keyword-style (kw a d) nodes.
func Combinearg(a Arg) sx.Node {
	var n sx.Node
	switch {
	case a.Name == nil:
		n = sx.E(sx.Decl, a.Type)
	case a.Type == nil || sx.Equal(a.Type, AnyType):
		n = a.Name
	default:
		n = sx.E(sx.Decl, a.Name, a.Type)
	}
	if a.Splat {
		n = sx.E(sx.Splat, n)
	}
	if a.Default != nil {
		n = sx.E(sx.Kw, n, a.Default)
	}
	return n
}
