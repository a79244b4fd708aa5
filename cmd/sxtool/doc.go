/*
Command sxtool applies the sxtools passes to s-expression files.

Usage:

    sxtool prettify [files...]            clean up generated code
    sxtool rewrite --pass longdef [files] apply a single pass
    sxtool splitdef [files...]            show the parts of function definitions
    sxtool encode [files...]              convert to MessagePack
    sxtool decode [files...]              convert MessagePack to s-expressions
    sxtool repl                           interactive mode

Files are processed concurrently, output is written in the order of the input
files. Without file arguments, input is read from stdin. Files with extension
".sxb" are read as MessagePack, all others as s-expression text.

Settings are read from a TOML file (flag --config, default "sxtool.toml" in the
current directory, if present), and may be overridden by command-line flags:

    trace = "Info"
    keep_line_markers = false
    alias = true
    alias_strategy = "stable"   # random | ordered | stable
    seed = 0
    wordlist = ""               # default: animal names
    jobs = 4
    format = "text"             # text | msgpack

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sxtools.cli'
func tracer() tracing.Trace {
	return tracing.Select("sxtools.cli")
}
