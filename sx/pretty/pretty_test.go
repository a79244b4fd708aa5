package pretty

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/alias"
	"github.com/npillmayer/sxtools/sx/sxlang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncName(t *testing.T) {
	name, ok := FuncName(strings.ToUpper)
	require.True(t, ok)
	assert.Equal(t, "ToUpper", name)
	_, ok = FuncName(42)
	assert.False(t, ok)
	var nilFunc func()
	_, ok = FuncName(nilFunc)
	assert.False(t, ok)
}

func TestUnresolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	tree := sx.E(sx.Call, sx.FuncRef{Fn: strings.TrimSpace}, sx.FuncRef{Name: "plus", Fn: nil}, sx.Sym("x"))
	result := Unresolve(tree, nil)
	assert.Equal(t, "(call TrimSpace plus x)", result.String())
	result = Unresolve(tree, func(interface{}) (string, bool) { return "", false })
	assert.Equal(t, "(call <func> plus x)", result.String())
}

func TestResyntax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	cases := map[string]string{
		`(call setfield! a (quote b) (call + (. a (quote b)) 1))`: `(+= (. a (quote b)) 1)`,
		`(call setfield! a (quote b) 1)`:                          `(= (. a (quote b)) 1)`,
		`(call setindex! a v i j)`:                                `(= (ref a i j) v)`,
		`(call getindex a (call getindex b 1))`:                   `(ref a (ref b 1))`,
		`(call tuple 1 2)`:                                        `(tuple 1 2)`,
		`(call adjoint m)`:                                        `(' m)`,
		`(call f x)`:                                              `(call f x)`,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Resyntax(sxlang.MustParse(input)).String(), "resyntax of %s", input)
	}
}

const generated = `(block
  (line-marker 1 "gen.sx")
  (block
    (= ##tmp#4 (call getindex xs 1))
    (call setfield! obj (quote count) (call + (. obj (quote count)) ##tmp#4)))
  (call tuple ##tmp#4 ##i#5))`

func TestPrettify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	ordered := alias.New(alias.NewWordList([]string{"ant", "bee"}), alias.WithStrategy(alias.Ordered()))
	result, err := Prettify(sxlang.MustParse(generated), WithAliaser(ordered))
	require.NoError(t, err)
	expected := `(block (= ant (ref xs 1)) (+= (. obj (quote count)) ant) (tuple ant bee))`
	assert.Equal(t, expected, result.String())
}

func TestPrettifyOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	result, err := Prettify(sxlang.MustParse(generated), WithoutAliasing(), KeepLineMarkers(true))
	require.NoError(t, err)
	expected := `(block (line-marker 1 "gen.sx") (= ##tmp#4 (ref xs 1)) ` +
		`(+= (. obj (quote count)) ##tmp#4) (tuple ##tmp#4 ##i#5))`
	assert.Equal(t, expected, result.String())
	//
	tiny := alias.New(alias.NewWordList([]string{"ant"}))
	_, err = Prettify(sxlang.MustParse(generated), WithAliaser(tiny))
	assert.ErrorIs(t, err, alias.ErrAliasExhausted)
}

func TestPrettifyIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	once, err := Prettify(sxlang.MustParse(generated))
	require.NoError(t, err)
	twice, err := Prettify(once)
	require.NoError(t, err)
	assert.True(t, sx.Equal(once, twice), "%v\n%v", once, twice)
}

func TestPasses(t *testing.T) {
	assert.Contains(t, Names(), "prettify")
	assert.IsIncreasing(t, Names())
	p, ok := Lookup("shortdef")
	require.True(t, ok)
	n, err := p(sxlang.MustParse(`(function (call f x) (block x))`))
	require.NoError(t, err)
	assert.Equal(t, "(= (call f x) x)", n.String())
	_, ok = Lookup("no-such-pass")
	assert.False(t, ok)
}
