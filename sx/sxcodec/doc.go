/*
Package sxcodec serializes sx trees.

Trees are encoded in MessagePack format, which is considerably more compact and
faster to read than s-expression text. Function references cannot be serialized
and have to be unresolved to names before encoding (see package pretty).

Digest computes a content hash of a tree, which is stable across processes and
may be used as a cache key or as a seed for deterministic aliasing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sxcodec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
