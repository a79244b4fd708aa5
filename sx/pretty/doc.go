/*
Package pretty cleans up generated code for display.

Trees produced by macro expansion and code generation are hard to read: they
contain nested blocks, references to live functions, primitive calls in place of
operator syntax, generated identifiers and line markers. Prettify removes all of
these, in this order:

    1. flatten nested blocks
    2. replace function references by function names
    3. rewrite primitive calls to operator syntax, e.g.
          (call getindex a i)  =>  (ref a i)
    4. alias generated identifiers
    5. strip line markers (optional)

The individual stages are available as named passes (see Lookup).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pretty

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
