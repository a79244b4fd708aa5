package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/sxcodec"
	"github.com/npillmayer/sxtools/sx/sxlang"
	"golang.org/x/sync/errgroup"
)

// binaryExt is the file extension of MessagePack encoded trees.
const binaryExt = ".sxb"

// Transform is applied to every top-level tree of the input.
type Transform func(sx.Node) (sx.Node, error)

// fileResult holds the transformed trees of one input.
type fileResult struct {
	name  string
	trees []sx.Node
}

// process reads the input files, applies a transformation to every tree and
// collects the results in the order of files. Files are processed concurrently.
// Without files, input is read from stdin.
func (a *app) process(ctx context.Context, files []string, stdin io.Reader, tf Transform) ([]fileResult, error) {
	if len(files) == 0 {
		trees, err := a.read("<stdin>", stdin)
		if err != nil {
			return nil, err
		}
		if err = transformAll("<stdin>", trees, tf); err != nil {
			return nil, err
		}
		return []fileResult{{name: "<stdin>", trees: trees}}, nil
	}
	jobs := a.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]fileResult, len(files)) // every goroutine writes its own slot
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			trees, err := a.readFile(path)
			if err != nil {
				return err
			}
			if err = transformAll(path, trees, tf); err != nil {
				return err
			}
			results[i] = fileResult{name: path, trees: trees}
			tracer().Debugf("processed %s: %d trees", path, len(trees))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func transformAll(name string, trees []sx.Node, tf Transform) error {
	for i, t := range trees {
		out, err := tf(t)
		if err != nil {
			tracer().Errorf("%s: %v", name, err)
			return fmt.Errorf("%s: tree #%d: %w", name, i+1, err)
		}
		trees[i] = out
	}
	return nil
}

func (a *app) readFile(path string) ([]sx.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return a.read(path, f)
}

// read reads all trees from r. Files with extension .sxb are decoded from
// MessagePack, all others are parsed as s-expressions.
func (a *app) read(name string, r io.Reader) ([]sx.Node, error) {
	if a.inputFormat == "msgpack" || filepath.Ext(name) == binaryExt {
		trees, err := sxcodec.DecodeAll(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return trees, nil
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trees, err := sxlang.ParseAll(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return trees, nil
}

// write writes results in the configured output format. Text output of more
// than one file is separated by comment lines naming the file.
func (a *app) write(w io.Writer, results []fileResult) error {
	if a.cfg.Format == "msgpack" {
		var all []sx.Node
		for _, r := range results {
			all = append(all, r.trees...)
		}
		return sxcodec.EncodeAll(w, all)
	}
	for _, r := range results {
		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "; %s\n", r.name); err != nil {
				return err
			}
		}
		for _, t := range r.trees {
			if _, err := fmt.Fprintln(w, sx.IndentedString(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputFor returns the destination for output, together with a function to close it.
func (a *app) outputFor(stdout io.Writer) (io.Writer, func() error, error) {
	if a.output == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(a.output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
