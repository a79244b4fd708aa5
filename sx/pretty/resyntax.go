package pretty

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

var (
	plusAssign = sx.HeadOf("+=")
	adjoint    = sx.HeadOf("'")
)

func field(b termr.Bindings) sx.Node {
	return sx.E(sx.Dot, b.Node("x"), sx.E(sx.Quote, b.Node("f")))
}

// resyntaxRules rewrite calls of primitive functions to operator syntax.
var resyntaxRules = termr.RuleSet{
	termr.Rule("setfield-plus", `(call setfield! x_ (quote f_) (call + (. x_ (quote f_)) v_))`,
		func(b termr.Bindings) sx.Node {
			return sx.E(plusAssign, field(b), b.Node("v"))
		}),
	termr.Rule("setfield", `(call setfield! x_ (quote f_) v_)`, func(b termr.Bindings) sx.Node {
		return sx.E(sx.Assign, field(b), b.Node("v"))
	}),
	termr.Rule("setindex", `(call setindex! x_ v_ i__)`, func(b termr.Bindings) sx.Node {
		ref := sx.E(sx.Ref, append([]sx.Node{b.Node("x")}, b.Seq("i")...)...)
		return sx.E(sx.Assign, ref, b.Node("v"))
	}),
	termr.Rule("getindex", `(call getindex x_ i__)`, func(b termr.Bindings) sx.Node {
		return sx.E(sx.Ref, append([]sx.Node{b.Node("x")}, b.Seq("i")...)...)
	}),
	termr.Rule("tuple", `(call tuple xs__)`, func(b termr.Bindings) sx.Node {
		return sx.E(sx.Tuple, b.Seq("xs")...)
	}),
	termr.Rule("adjoint", `(call adjoint x_)`, func(b termr.Bindings) sx.Node {
		return sx.E(adjoint, b.Node("x"))
	}),
}

// Resyntax rewrites calls of primitive functions into their operator syntax:
//
//    (call setfield! x (quote f) v)   =>  (= (. x (quote f)) v)
//    (call setindex! x v i)           =>  (= (ref x i) v)
//    (call getindex x i)              =>  (ref x i)
//    (call tuple a b)                 =>  (tuple a b)
//    (call adjoint x)                 =>  (' x)
//
// A field update of the form x.f = x.f + v is written as (+= (. x (quote f)) v).
func Resyntax(tree sx.Node) sx.Node {
	return resyntaxRules.Prewalk(tree)
}
