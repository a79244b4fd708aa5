/*
Package flow normalizes the block structure of sx trees.

Blocks group statements. Many of them are required by surface syntax but carry
no meaning, e.g. a block holding a single statement, or a block nested directly
inside another block. Line markers are inert statements which do not count when
deciding whether a block is redundant.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
