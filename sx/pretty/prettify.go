package pretty

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/alias"
	"github.com/npillmayer/sxtools/sx/flow"
)

type config struct {
	keepLines bool
	noAlias   bool
	aliaser   *alias.Aliaser
	resolver  NameResolver
}

// Option configures Prettify.
type Option func(*config)

// KeepLineMarkers controls whether line markers are kept in the output.
// Default is false.
func KeepLineMarkers(b bool) Option {
	return func(c *config) {
		c.keepLines = b
	}
}

// WithAliaser sets the aliaser for generated identifiers. Default is an aliaser
// selecting animal names at random.
func WithAliaser(a *alias.Aliaser) Option {
	return func(c *config) {
		c.aliaser = a
	}
}

// WithoutAliasing leaves generated identifiers in place.
func WithoutAliasing() Option {
	return func(c *config) {
		c.noAlias = true
	}
}

// WithResolver sets the resolver for names of function references. Default is
// FuncName.
func WithResolver(r NameResolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// Prettify makes a tree presentable. See the package documentation for the
// stages. An error is returned if aliasing fails, in which case the tree is returned
// in the state before aliasing.
//
// Prettify is idempotent if line markers are stripped.
func Prettify(tree sx.Node, opts ...Option) (sx.Node, error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	tree = flow.Flatten(tree)
	tree = Unresolve(tree, c.resolver)
	tree = Resyntax(tree)
	if !c.noAlias {
		a := c.aliaser
		if a == nil {
			a = alias.New(alias.Animals())
		}
		aliased, err := a.Alias(tree)
		if err != nil {
			return tree, err
		}
		tree = aliased
	}
	if !c.keepLines {
		tree = flow.StripLines(tree)
	}
	return tree, nil
}
