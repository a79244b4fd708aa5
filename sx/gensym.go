package sx

import (
	"strconv"
	"sync/atomic"
)

// GensymMarker is contained in the names of all generated identifiers. Users
// cannot type it as part of an identifier in surface syntax.
const GensymMarker = "#"

var gensymCounter atomic.Uint64

// Gensym creates a fresh generated identifier from a base name, in the form
//
//    ##base#17
//
// Gensym is safe for concurrent use.
func Gensym(base string) Sym {
	n := gensymCounter.Add(1)
	return Sym("##" + base + GensymMarker + strconv.FormatUint(n, 10))
}
