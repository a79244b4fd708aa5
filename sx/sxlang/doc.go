/*
Package sxlang provides a reader for sx trees written as s-expressions.

The notation is the one produced by the String() methods of package sx:

    (function (call f x) (block (line-marker 1 "f.sx") (call + x 1)))

A compound expression is a parenthesized list whose first element is the head tag;
all other atoms are leaves: integers, floats, quoted strings, the literals true,
false and nothing, and symbols. Floats carry a decimal point or an exponent
(2.0, 1e+21), or are one of Inf, -Inf and NaN. Symbols are any other run of
characters not containing whitespace, parentheses, double quotes or semicolons.
A symbol which cannot be written that way is escaped as a hash sign followed by
a quoted string:

    (call f #"nothing" #"a b" #"12")

Comments start with ';' and extend to the end of the line.

Reading s-expressions is plumbing for tests, the command line tool and the REPL.
The rewriting packages never depend on it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sxlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.sx'
func tracer() tracing.Trace {
	return tracing.Select("sxtools.sx")
}
