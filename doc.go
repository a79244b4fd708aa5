/*
Package sxtools is a toolbox for rewriting syntax trees.

Tools which generate or transform code programmatically (macro systems, code
generators, linters) all need to walk, match and restructure already-parsed code.
sxtools provides a small set of composable primitives for this, operating on a
homogenous tree of expression nodes. Package structure is as follows:

■ sx: Package sx implements the homogenous tree: leaves, compound expressions with a
head tag, structural predicates and value equality.

■ sx/fp: Tree walkers (pre-order and post-order rewriting), lazy traversal sequences,
search and substitution.

■ sx/termr: Pattern matching and rewrite rules.

■ sx/flow, sx/alias, sx/defn: Rewrite passes for blocks, generated identifiers and
function definitions.

■ sx/pretty: A cleanup pipeline composing the passes.

■ sx/sxlang, sx/sxcodec: Plumbing to read trees from s-expression text and to store
them in a binary format.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sxtools
