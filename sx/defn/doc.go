/*
Package defn normalizes function definitions.

Function definitions come in two surface forms. The long form is an explicit
function declaration with a body block:

    (function (call f x) (block (call + x 1)))
    (function (:: (call f x) Int) (block (call + x 1)))
    (function (tuple x y) (block (call * x y)))

The short form is an assignment to a call, or an arrow:

    (= (call f x) (call + x 1))
    (-> (tuple x y) (call * x y))
    (-> x (call + x 1))

Longdef and Shortdef convert between the forms, everywhere in a tree.
Splitdef decomposes a definition into its parts (name, positional and keyword
arguments, return type, body), and Combinedef puts the parts back together.
Splitarg and Combinearg do the same for single arguments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package defn

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
