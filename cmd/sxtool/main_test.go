package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/sxcodec"
	"github.com/npillmayer/sxtools/sx/sxlang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parseOutput(t *testing.T, out string) []sx.Node {
	t.Helper()
	trees, err := sxlang.ParseAll(out)
	require.NoError(t, err, out)
	return trees
}

const generatedCode = `(block (line-marker 1 "gen.sx")
  (block (= ##tmp#1 (call getindex xs 1)) (call tuple ##tmp#1 ##tmp#1)))`

func TestPrettifyCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	out, err := execute(t, generatedCode, "prettify", "--alias-strategy", "ordered")
	require.NoError(t, err)
	trees := parseOutput(t, out)
	require.Len(t, trees, 1)
	assert.Equal(t, "(block (= aardvark (ref xs 1)) (tuple aardvark aardvark))", trees[0].String())
	//
	out, err = execute(t, generatedCode, "prettify", "--no-alias", "--keep-lines")
	require.NoError(t, err)
	trees = parseOutput(t, out)
	assert.Equal(t, `(block (line-marker 1 "gen.sx") (= ##tmp#1 (ref xs 1)) (tuple ##tmp#1 ##tmp#1))`,
		trees[0].String())
}

func TestStableAliasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	out1, err := execute(t, generatedCode, "prettify", "--alias-strategy", "stable")
	require.NoError(t, err)
	out2, err := execute(t, generatedCode, "prettify", "--alias-strategy", "stable")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestRewriteCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	dir := t.TempDir()
	f1 := writeFile(t, dir, "a.sx", `(= (call f x) (call + x 1))`)
	f2 := writeFile(t, dir, "b.sx", "(-> y y)\n(block (block 1) 2)")
	out, err := execute(t, "", "rewrite", "--pass", "longdef", "-p", "flatten", "-j", "2", f1, f2)
	require.NoError(t, err)
	assert.True(t, strings.Index(out, "a.sx") < strings.Index(out, "b.sx"), "output must be in file order")
	trees := parseOutput(t, out)
	require.Len(t, trees, 3)
	assert.Equal(t, "(function (call f x) (block (call + x 1)))", trees[0].String())
	assert.Equal(t, "(function (tuple y) (block y))", trees[1].String())
	assert.Equal(t, "(block 1 2)", trees[2].String())
}

func TestRewriteErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	_, err := execute(t, "x", "rewrite")
	assert.Error(t, err)
	_, err = execute(t, "x", "rewrite", "--pass", "no-such-pass")
	assert.Error(t, err)
	_, err = execute(t, "(call f", "rewrite", "--pass", "flatten")
	assert.Error(t, err)
	_, err = execute(t, "", "rewrite", "--pass", "flatten", filepath.Join(t.TempDir(), "missing.sx"))
	assert.Error(t, err)
	out, err := execute(t, "", "rewrite", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "shortdef")
}

func TestSplitdefCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	input := `(= (:: (call f (parameters (kw k 1)) (kw (:: x Int) 2) (... ys)) Int) (call + x k))`
	out, err := execute(t, input, "splitdef")
	require.NoError(t, err)
	trees := parseOutput(t, out)
	require.Len(t, trees, 1)
	expected := `(def (name f) (args (arg x Int 2) (arg ys (... Any))) (kwargs (arg k Any 1)) ` +
		`(rtype Int) (body (block (call + x k))))`
	assert.Equal(t, expected, trees[0].String())
	//
	_, err = execute(t, "42", "splitdef")
	assert.Error(t, err)
	_, err = execute(t, "(= (call f (kw y nothing)) y)", "splitdef")
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	dir := t.TempDir()
	binary := filepath.Join(dir, "tree.sxb")
	_, err := execute(t, generatedCode, "encode", "-o", binary)
	require.NoError(t, err)
	f, err := os.Open(binary)
	require.NoError(t, err)
	trees, err := sxcodec.DecodeAll(f)
	f.Close()
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.True(t, sx.Equal(sxlang.MustParse(generatedCode), trees[0]))
	//
	out, err := execute(t, "", "decode", binary)
	require.NoError(t, err)
	assert.True(t, sx.Equal(sxlang.MustParse(generatedCode), parseOutput(t, out)[0]))
	// .sxb files are recognized by extension
	out, err = execute(t, "", "rewrite", "-p", "striplines", binary)
	require.NoError(t, err)
	assert.NotContains(t, out, "line-marker")
}

func TestDecodeKeepsLeafTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	tree := sx.E(sx.Call, sx.Sym("f"), sx.Float(1e21), sx.Float(1e-7), sx.Float(math.Inf(1)),
		sx.Sym("nothing"), sx.Sym("true"), sx.Sym("a b"), sx.Sym("12"), sx.Nothing{})
	dir := t.TempDir()
	binary := filepath.Join(dir, "leaves.sxb")
	f, err := os.Create(binary)
	require.NoError(t, err)
	require.NoError(t, sxcodec.EncodeAll(f, []sx.Node{tree}))
	require.NoError(t, f.Close())
	//
	out, err := execute(t, "", "decode", binary)
	require.NoError(t, err)
	trees := parseOutput(t, out)
	require.Len(t, trees, 1)
	assert.True(t, sx.Equal(tree, trees[0]), "decoded as %s", out)
}
