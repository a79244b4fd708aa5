/*
Package alias replaces generated identifiers with readable names.

Macro expansion and code generation introduce identifiers which cannot clash
with names written by users, like '##tmp#17'. They are recognized by the gensym
marker '#', which cannot occur in user identifiers. Printing such identifiers
makes code hard to read, so an Aliaser substitutes them with words from a word
list:

    (= ##tmp#17 (call f ##tmp#17 ##x#3))   =>   (= walrus (call f walrus badger))

Within one run of an aliaser, every generated identifier gets a word of its own,
and repeated occurences of an identifier get the same word. Words already used
as names in the tree are not handed out. If the word list is exhausted, the run
fails with ErrAliasExhausted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package alias

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'.
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
