package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/pretty"
	"github.com/npillmayer/sxtools/sx/sxlang"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (a *app) replCmd() *cobra.Command {
	var initFile string
	cmd := &cobra.Command{
		Use:   "repl [s-expression]",
		Short: "Interactive mode",
		Long: "Starts an interactive session. Enter an s-expression to make it the current tree, " +
			"or a command to apply to the current tree. Type :help for a list of commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.startREPL(initFile, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&initFile, "init", "", "file with commands to run at start")
	return cmd
}

// startREPL starts an interactive CLI, where users may enter s-expressions and
// apply passes to them. It is intended as a sandbox for experiments with tree
// rewriting.
func (a *app) startREPL(initFile, input string) error {
	initDisplay()
	pterm.Info.Println("Welcome to the sxtool REPL") // colored welcome message
	repl, err := readline.New("sx> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	intp := &Intp{app: a, repl: repl}
	if input = strings.TrimSpace(input); input != "" {
		if _, err := intp.Eval(input); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(initFile)
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object.
type Intp struct {
	app     *app
	repl    *readline.Instance
	tree    sx.Node   // the current tree
	history []sx.Node // previous trees, for :undo
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var errNoTree = errors.New("no current tree, enter an s-expression first")

// Eval evaluates a line of input. A line starting with ':' is a command, anything
// else is read as an s-expression, which becomes the current tree.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		tree, err := sxlang.Parse(line)
		if err != nil {
			return false, err
		}
		intp.setTree(tree)
		intp.printTree()
		return false, nil
	}
	args := strings.Fields(line[1:])
	if len(args) == 0 {
		return false, errors.New("empty command")
	}
	cmd := args[0]
	switch cmd {
	case "q", "quit":
		return true, nil
	case "help":
		pterm.Info.Println(":<pass> applies a pass, :passes lists passes, :tree shows the " +
			"current tree, :undo goes back, :quit ends the session")
		return false, nil
	case "passes":
		pterm.Info.Println(strings.Join(pretty.Names(), " "))
		return false, nil
	}
	if intp.tree == nil {
		return false, errNoTree
	}
	switch cmd {
	case "tree":
		pterm.DefaultTree.WithRoot(treeView(intp.tree)).Render()
		return false, nil
	case "undo":
		if len(intp.history) == 0 {
			return false, errors.New("nothing to undo")
		}
		intp.tree = intp.history[len(intp.history)-1]
		intp.history = intp.history[:len(intp.history)-1]
		intp.printTree()
		return false, nil
	case "split":
		split, err := splitDefinition(intp.tree)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(sx.IndentedString(split))
		return false, nil
	}
	tf, err := intp.app.passes([]string{cmd})
	if err != nil {
		return false, err
	}
	result, err := tf(intp.tree)
	if err != nil {
		return false, fmt.Errorf("pass %s: %w", cmd, err)
	}
	intp.setTree(result)
	intp.printTree()
	return false, nil
}

func (intp *Intp) setTree(tree sx.Node) {
	if intp.tree != nil {
		intp.history = append(intp.history, intp.tree)
	}
	intp.tree = tree
}

func (intp *Intp) printTree() {
	pterm.Info.Println(intp.tree.String())
}

// treeView creates a pterm tree for displaying a syntax tree on a terminal.
func treeView(n sx.Node) pterm.TreeNode {
	ll := leveledNode(n, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledNode(n sx.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	e, ok := sx.AsExpr(n)
	if !ok {
		return append(ll, pterm.LeveledListItem{Level: level, Text: n.String()})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: "(" + e.Head.Name() + ")"})
	for _, a := range e.Args {
		ll = leveledNode(a, ll, level+1)
	}
	return ll
}
