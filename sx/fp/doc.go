/*
Package fp implements tree walking for sx trees, in a functional style.

There are two kinds of walks. Rewriting walks (Postwalk, Prewalk) rebuild a tree,
applying a mapper function to every node. Traversals (Traverse) produce a lazy
sequence of the nodes of a tree, which clients may filter and map, and stop at any
time. Search and substitution (Contains, Replace) are built on top of them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
