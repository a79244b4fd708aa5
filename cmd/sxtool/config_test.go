package main

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	dir := t.TempDir()
	path := writeFile(t, dir, "sxtool.toml", `
trace = "Debug"
keep_line_markers = true
alias_strategy = "ordered"
seed = 17
jobs = 3
format = "msgpack"
unknown_key = 1
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Debug", cfg.Trace)
	assert.True(t, cfg.KeepLineMarkers)
	assert.True(t, cfg.Alias, "alias should keep its default")
	assert.Equal(t, "ordered", cfg.AliasStrategy)
	assert.Equal(t, uint64(17), cfg.Seed)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, "msgpack", cfg.Format)
	require.NoError(t, cfg.validate())
	//
	_, err = loadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	bad := writeFile(t, dir, "bad.toml", `jobs = "many"`)
	_, err = loadConfig(bad)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())
	cfg.AliasStrategy = "clever"
	assert.Error(t, cfg.validate())
	cfg = defaultConfig()
	cfg.Format = "xml"
	assert.Error(t, cfg.validate())
	cfg = defaultConfig()
	cfg.Jobs = -1
	assert.Error(t, cfg.validate())
}

func TestConfigFileAndFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	dir := t.TempDir()
	words := writeFile(t, dir, "words.txt", "# words\nZebra\nyak\n")
	cfgFile := writeFile(t, dir, "cfg.toml", `
alias_strategy = "ordered"
wordlist = "`+filepath.ToSlash(words)+`"
`)
	out, err := execute(t, "(call f ##a#1 ##b#2)", "--config", cfgFile, "prettify")
	require.NoError(t, err)
	assert.Equal(t, "(call f yak zebra)", parseOutput(t, out)[0].String())
	// flags override the config file
	out, err = execute(t, "(call f ##a#1 ##b#2)", "--config", cfgFile, "--no-alias", "prettify")
	require.NoError(t, err)
	assert.Equal(t, "(call f ##a#1 ##b#2)", parseOutput(t, out)[0].String())
	// word list exhausted
	_, err = execute(t, "(call f ##a#1 ##b#2 ##c#3)", "--config", cfgFile, "prettify")
	assert.Error(t, err)
}

func TestREPLEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.cli")
	defer teardown()
	//
	a := &app{cfg: defaultConfig()}
	a.cfg.AliasStrategy = "ordered"
	intp := &Intp{app: a}
	_, err := intp.Eval(":longdef")
	assert.ErrorIs(t, err, errNoTree)
	_, err = intp.Eval(`(= (call f x) (block (block x)))`)
	require.NoError(t, err)
	_, err = intp.Eval(":longdef")
	require.NoError(t, err)
	_, err = intp.Eval(":flatten")
	require.NoError(t, err)
	assert.Equal(t, "(function (call f x) (block x))", intp.tree.String())
	_, err = intp.Eval(":undo")
	require.NoError(t, err)
	assert.Equal(t, "(function (call f x) (block (block x)))", intp.tree.String())
	_, err = intp.Eval(":split")
	assert.NoError(t, err)
	_, err = intp.Eval(":tree")
	assert.NoError(t, err)
	_, err = intp.Eval(":nonsense")
	assert.Error(t, err)
	quit, err := intp.Eval(":quit")
	assert.NoError(t, err)
	assert.True(t, quit)
	_, err = intp.Eval(`(call f`)
	assert.Error(t, err)
}
