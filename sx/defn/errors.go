package defn

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sxtools/sx"
)

// ErrNotAFunctionDefinition is returned when decomposing a node which is not a
// function definition.
var ErrNotAFunctionDefinition = errors.New("not a function definition")

// ErrAmbiguousDefault is returned for an argument with a default value of
// 'nothing', which cannot be told apart from an argument without default.
// Clients have to use (quote nothing) instead.
var ErrAmbiguousDefault = errors.New("ambiguous default value nothing, use (quote nothing)")

// DefinitionError carries the node which was rejected as a function definition.
type DefinitionError struct {
	Node sx.Node
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNotAFunctionDefinition.Error(), e.Node)
}

// Unwrap makes DefinitionError match ErrNotAFunctionDefinition with errors.Is.
func (e *DefinitionError) Unwrap() error {
	return ErrNotAFunctionDefinition
}

// ArgError carries an argument node with an ambiguous default value.
type ArgError struct {
	Node sx.Node
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %v: %s", e.Node, ErrAmbiguousDefault.Error())
}

// Unwrap makes ArgError match ErrAmbiguousDefault with errors.Is.
func (e *ArgError) Unwrap() error {
	return ErrAmbiguousDefault
}
