package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/defn"
	"github.com/npillmayer/sxtools/sx/pretty"
	"github.com/spf13/cobra"
)

// runWith returns a cobra run function which processes the argument files with a
// transformation and writes the results.
func (a *app) runWith(tf func() Transform) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		results, err := a.process(cmd.Context(), args, cmd.InOrStdin(), tf())
		if err != nil {
			return err
		}
		w, closer, err := a.outputFor(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err = a.write(w, results); err != nil {
			closer()
			return err
		}
		return closer()
	}
}

func identity(n sx.Node) (sx.Node, error) {
	return n, nil
}

// --- prettify --------------------------------------------------------------

func (a *app) prettifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prettify [files...]",
		Short: "Clean up generated code",
		Long: "Flattens blocks, replaces function references by names, rewrites primitive " +
			"calls to operator syntax, aliases generated identifiers and strips line markers.",
		RunE: a.runWith(func() Transform { return a.prettify }),
	}
}

func (a *app) prettify(n sx.Node) (sx.Node, error) {
	opts := []pretty.Option{pretty.KeepLineMarkers(a.cfg.KeepLineMarkers)}
	if a.cfg.Alias {
		al, err := a.cfg.aliaserFor(n)
		if err != nil {
			return n, err
		}
		opts = append(opts, pretty.WithAliaser(al))
	} else {
		opts = append(opts, pretty.WithoutAliasing())
	}
	return pretty.Prettify(n, opts...)
}

// --- rewrite ---------------------------------------------------------------

func (a *app) rewriteCmd() *cobra.Command {
	var passNames []string
	var list bool
	cmd := &cobra.Command{
		Use:   "rewrite --pass name [--pass name ...] [files...]",
		Short: "Apply rewriting passes",
		Long:  "Applies one or more named passes, in the order given. Use --list to see all passes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range pretty.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if len(passNames) == 0 {
				return fmt.Errorf("no pass given, available passes: %s", strings.Join(pretty.Names(), ", "))
			}
			tf, err := a.passes(passNames)
			if err != nil {
				return err
			}
			return a.runWith(func() Transform { return tf })(cmd, args)
		},
	}
	cmd.Flags().StringSliceVarP(&passNames, "pass", "p", nil, "pass to apply (repeatable)")
	cmd.Flags().BoolVar(&list, "list", false, "list available passes")
	return cmd
}

// passes chains named passes into a single transformation. Passes which alias
// generated identifiers use the configured aliaser.
func (a *app) passes(names []string) (Transform, error) {
	var chain []Transform
	for _, name := range names {
		switch name {
		case "alias":
			chain = append(chain, func(n sx.Node) (sx.Node, error) {
				al, err := a.cfg.aliaserFor(n)
				if err != nil {
					return n, err
				}
				return al.Alias(n)
			})
		case "prettify":
			chain = append(chain, a.prettify)
		default:
			p, ok := pretty.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown pass %q, available passes: %s", name,
					strings.Join(pretty.Names(), ", "))
			}
			chain = append(chain, Transform(p))
		}
	}
	return func(n sx.Node) (sx.Node, error) {
		var err error
		for _, tf := range chain {
			if n, err = tf(n); err != nil {
				return n, err
			}
		}
		return n, nil
	}, nil
}

// --- splitdef --------------------------------------------------------------

func (a *app) splitdefCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splitdef [files...]",
		Short: "Decompose function definitions",
		Long: "Decomposes every top-level function definition into its parts, written as\n\n" +
			"    (def (name f) (args (arg x Int) ...) (kwargs ...) (rtype R) (where ...) (body ...))\n\n" +
			"Arguments are written as (arg name type [default]), with name _ for unnamed arguments " +
			"and type (... T) for splat arguments.",
		RunE: a.runWith(func() Transform { return splitDefinition }),
	}
}

var defHead = sx.HeadOf("def")

func part(name string, args ...sx.Node) sx.Node {
	return sx.E(sx.HeadOf(name), args...)
}

func splitDefinition(n sx.Node) (sx.Node, error) {
	d, err := defn.Splitdef(n)
	if err != nil {
		return n, err
	}
	args, err := splitArgs(d.Args)
	if err != nil {
		return n, err
	}
	kwargs, err := splitArgs(d.Kwargs)
	if err != nil {
		return n, err
	}
	name := sx.Node(sx.Sym("_"))
	if !d.IsAnonymous() {
		name = d.Name
	}
	parts := []sx.Node{part("name", name), part("args", args...), part("kwargs", kwargs...)}
	if len(d.Params) > 0 {
		parts = append(parts, part("params", d.Params...))
	}
	if d.RType != nil {
		parts = append(parts, part("rtype", d.RType))
	}
	if len(d.WhereParams) > 0 {
		parts = append(parts, part("where", d.WhereParams...))
	}
	parts = append(parts, part("body", d.Body))
	return sx.E(defHead, parts...), nil
}

func splitArgs(nodes []sx.Node) ([]sx.Node, error) {
	args := make([]sx.Node, 0, len(nodes))
	for _, n := range nodes {
		arg, err := defn.Splitarg(n)
		if err != nil {
			return nil, err
		}
		name := sx.Node(sx.Sym("_"))
		if arg.Name != nil {
			name = arg.Name
		}
		typ := arg.Type
		if arg.Splat {
			typ = sx.E(sx.Splat, typ)
		}
		a := []sx.Node{name, typ}
		if arg.Default != nil {
			a = append(a, arg.Default)
		}
		args = append(args, part("arg", a...))
	}
	return args, nil
}

// --- encode / decode -------------------------------------------------------

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [files...]",
		Short: "Convert s-expressions to MessagePack",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Format = "msgpack"
			return a.runWith(func() Transform { return identity })(cmd, args)
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [files...]",
		Short: "Convert MessagePack to s-expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.inputFormat = "msgpack"
			a.cfg.Format = "text"
			return a.runWith(func() Transform { return identity })(cmd, args)
		},
	}
}
