/*
Package termr implements term rewriting for sx trees.

A rewrite rule consists of a pattern and a rewriting function. Patterns are
matched against single nodes; a successful match yields a set of bindings, which
the rewriting function uses to construct the replacement (the redex's
contractum). Rules are collected into ordered rule sets, where the first matching
rule wins. Rule sets are applied to whole trees by the walkers of package fp.

Patterns may be built programmatically

    Expr(sx.Assign, Expr(sx.Call, Var("f"), Splat("args")), Var("body"))

or compiled from s-expression notation, where a symbol ending in '_' is a pattern
variable and a symbol ending in '__' matches a (possibly empty) sequence of
children:

    MustCompile(`(= (call f_ args__) body_)`)

A variable may be restricted to a node kind by naming the kind after the marker
'_::', as in 'name_::symbol'. Kinds are symbol, int, float, string, bool,
nothing, func and expr. Any other symbol, including one like 'my_int', is
matched literally. A variable occuring more than once in a pattern has to match
equal nodes at every occurence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
