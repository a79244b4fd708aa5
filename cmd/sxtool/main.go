package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// app holds the state of one invocation of sxtool.
type app struct {
	cfgFile     string
	cfg         Config
	inputFormat string // forces the input format; empty for auto-detection
	// flag values, overriding config file settings if set
	trace     string
	keepLines bool
	noAlias   bool
	strategy  string
	seed      uint64
	wordlist  string
	jobs      int
	format    string
	output    string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sxtool",
		Short: "Rewrite and prettify s-expression syntax trees",
		Long: "sxtool applies tree rewriting passes (block flattening, definition normalization, " +
			"aliasing of generated identifiers, ...) to files of s-expressions.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+", if present)")
	pf.StringVar(&a.trace, "trace", "Error", "trace level [Debug|Info|Error]")
	pf.BoolVar(&a.keepLines, "keep-lines", false, "keep line markers")
	pf.BoolVar(&a.noAlias, "no-alias", false, "do not alias generated identifiers")
	pf.StringVar(&a.strategy, "alias-strategy", "random", "alias selection: random|ordered|stable")
	pf.Uint64Var(&a.seed, "seed", 0, "seed for alias selection")
	pf.StringVar(&a.wordlist, "wordlist", "", "word list file for aliases (default: animal names)")
	pf.IntVarP(&a.jobs, "jobs", "j", 0, "number of files processed concurrently (default: number of CPUs)")
	pf.StringVar(&a.format, "format", "text", "output format: text|msgpack")
	pf.StringVarP(&a.output, "output", "o", "", "output file (default: stdout)")

	root.AddCommand(a.prettifyCmd())
	root.AddCommand(a.rewriteCmd())
	root.AddCommand(a.splitdefCmd())
	root.AddCommand(a.encodeCmd())
	root.AddCommand(a.decodeCmd())
	root.AddCommand(a.replCmd())
	return root
}

// setup loads the configuration, applies command-line overrides and initializes
// tracing.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if flags.Changed("keep-lines") {
		cfg.KeepLineMarkers = a.keepLines
	}
	if flags.Changed("no-alias") {
		cfg.Alias = !a.noAlias
	}
	if flags.Changed("alias-strategy") {
		cfg.AliasStrategy = a.strategy
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("wordlist") {
		cfg.WordList = a.wordlist
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if err = cfg.validate(); err != nil {
		return err
	}
	if err = cfg.loadWords(); err != nil {
		return err
	}
	initTracing(cfg.Trace)
	a.cfg = cfg
	return nil
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	lvl := tracing.TraceLevelFromString(level)
	tracer().SetTraceLevel(lvl)
	tracing.Select("sxtools.sx").SetTraceLevel(lvl)
	tracer().Debugf("trace level is %s", level)
}
