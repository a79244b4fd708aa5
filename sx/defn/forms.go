package defn

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/flow"
	"github.com/npillmayer/sxtools/sx/termr"
)

// isSignature is true for the signatures of named functions:
//
//    (call f args...)
//    (:: (call f args...) R)
//    (where <signature> T...)
//
func isSignature(n sx.Node) bool {
	for {
		e, ok := sx.AsExpr(n, sx.Call, sx.Decl, sx.Where)
		if !ok {
			return false
		}
		switch e.Head {
		case sx.Call:
			return e.Len() > 0
		case sx.Decl:
			return e.Len() == 2 && sx.HeadIs(e.Arg(0), sx.Call) && e.Arg(0).(*sx.Expr).Len() > 0
		}
		if e.Len() == 0 { // where without signature
			return false
		}
		n = e.Arg(0)
	}
}

func signature(b termr.Bindings) sx.Node {
	if !isSignature(b.Node("sig")) {
		return nil // reject
	}
	return b.Node("sig")
}

// longRules rewrite short form definitions into long form.
var longRules = termr.RuleSet{
	termr.Rule("long-named-rtype", `(= (:: (call f_ args__) R_) body_)`, longNamed),
	termr.Rule("long-named", `(= sig_ body_)`, longNamed),
	termr.Rule("long-anon-tuple", `(-> (tuple args__) body_)`, func(b termr.Bindings) sx.Node {
		return sx.E(sx.Function, sx.E(sx.Tuple, b.Seq("args")...), flow.Block(b.Node("body")))
	}),
	termr.Rule("long-anon-arg", `(-> arg_ body_)`, func(b termr.Bindings) sx.Node {
		return sx.E(sx.Function, sx.E(sx.Tuple, b.Node("arg")), flow.Block(b.Node("body")))
	}),
}

func longNamed(b termr.Bindings) sx.Node {
	var sig sx.Node
	if b.Has("sig") {
		if sig = signature(b); sig == nil {
			return nil
		}
	} else {
		call := sx.E(sx.Call, append([]sx.Node{b.Node("f")}, b.Seq("args")...)...)
		sig = sx.E(sx.Decl, call, b.Node("R"))
	}
	return sx.E(sx.Function, sig, flow.Block(b.Node("body")))
}

// shortRules rewrite long form definitions into short form.
var shortRules = termr.RuleSet{
	termr.Rule("short-named-rtype", `(function (:: (call f_ args__) R_) body_)`, shortNamed),
	termr.Rule("short-named", `(function sig_ body_)`, shortNamed),
	termr.Rule("short-anon-tuple", `(function (tuple args__) body_)`, func(b termr.Bindings) sx.Node {
		return sx.E(sx.Arrow, sx.E(sx.Tuple, b.Seq("args")...), shortBody(b.Node("body")))
	}),
	termr.Rule("short-anon-arg", `(-> arg_ body_)`, func(b termr.Bindings) sx.Node {
		if sx.HeadIs(b.Node("arg"), sx.Tuple) {
			return nil // already normalized
		}
		return sx.E(sx.Arrow, sx.E(sx.Tuple, b.Node("arg")), b.Node("body"))
	}),
}

func shortNamed(b termr.Bindings) sx.Node {
	var sig sx.Node
	if b.Has("sig") {
		if sig = signature(b); sig == nil {
			return nil
		}
	} else {
		call := sx.E(sx.Call, append([]sx.Node{b.Node("f")}, b.Seq("args")...)...)
		sig = sx.E(sx.Decl, call, b.Node("R"))
	}
	return sx.E(sx.Assign, sig, shortBody(b.Node("body")))
}

// shortBody unwraps a body block with a single child, unless the child is a block
// itself.
func shortBody(body sx.Node) sx.Node {
	if b, ok := sx.AsExpr(body, sx.Block); ok && b.Len() == 1 && !sx.HeadIs(b.Arg(0), sx.Block) {
		return b.Arg(0)
	}
	return body
}

// Longdef rewrites all short form function definitions within tree into long
// form. Long form definitions and other nodes are left untouched.
//
//    (= (call f x) (call + x 1))  =>  (function (call f x) (block (call + x 1)))
//    (-> x (call + x 1))          =>  (function (tuple x) (block (call + x 1)))
//
func Longdef(tree sx.Node) sx.Node {
	return longRules.Prewalk(tree)
}

// Shortdef rewrites all long form function definitions within tree into short
// form. Named functions become assignments, anonymous functions become arrows
// with a tuple of arguments.
//
//    (function (call f x) (block (call + x 1)))  =>  (= (call f x) (call + x 1))
//    (function (tuple x) (block (call + x 1)))   =>  (-> (tuple x) (call + x 1))
//
// A body block is kept unless it contains exactly one child.
func Shortdef(tree sx.Node) sx.Node {
	return shortRules.Prewalk(tree)
}

// longdef1 converts a single node to long form, if it is a short form definition.
func longdef1(n sx.Node) sx.Node {
	result, _ := longRules.Apply(n)
	return result
}

// IsShortDef is a predicate for short form function definitions.
func IsShortDef(n sx.Node) bool {
	_, ok := longRules.Apply(n)
	return ok
}

// IsDef is a predicate for function definitions, either in long or in short form.
func IsDef(n sx.Node) bool {
	_, err := Splitdef(n)
	return err == nil
}
