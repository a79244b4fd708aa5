package sxtools

import "fmt"

// --- Source positions -------------------------------------------------------

// Position is a source position, as carried by line-marker nodes of a syntax tree.
// Positions are pure metadata: no rewrite pass attaches behavior to them.
//
// An example would be a marker for line 12 of file "lib.sx":
//
//    File = "lib.sx"
//    Line = 12
//
// The zero value denotes an unknown position.
type Position struct {
	File string
	Line int
}

// At is a shortcut for creating a position.
func At(file string, line int) Position {
	return Position{File: file, Line: line}
}

// IsNull returns true for an unknown position.
func (p Position) IsNull() bool {
	return p == Position{}
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}
