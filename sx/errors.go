package sx

import (
	"errors"
	"fmt"
)

// ErrMalformedTree signals a tree violating a structural contract, e.g. a
// compound expression without children where at least one is required.
var ErrMalformedTree = errors.New("malformed syntax tree")

// TreeError is a contract violation caused by the shape of a node.
type TreeError struct {
	Node Node
	Msg  string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrMalformedTree.Error(), e.Msg, e.Node)
}

// Unwrap makes TreeError match ErrMalformedTree with errors.Is.
func (e *TreeError) Unwrap() error {
	return ErrMalformedTree
}
