/*
Package sx provides the homogenous expression tree all rewriting in sxtools
operates on.

A node of a tree is either a leaf or a compound expression. Leaves are atomic
values: symbols, numbers, strings, booleans, the "nothing" literal and references
to live Go functions. A compound expression has a head tag and an ordered
sequence of child nodes:

    (call + x 1)
    (block (line-marker 3 "f.sx") (= y (call f x)))

The vocabulary of head tags is open: heads for the common syntactic forms (block,
call, function, …) are enumerated as Tags, every other head is carried by name.
This keeps the rewriting code exhaustive-checkable while passing unknown shapes
through unchanged.

Trees are treated as values. No function in this module ever modifies a node
after construction; rewriting always builds new nodes. Clients should follow the
same discipline, as rewrite results may share sub-trees with their inputs.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
