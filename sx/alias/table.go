package alias

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/sxtools/sx"
)

// ErrAliasExhausted is returned if there are more generated identifiers in a tree
// than free words in the word list.
var ErrAliasExhausted = errors.New("word list exhausted")

// ExhaustionError reports the generated identifier for which no word was left.
type ExhaustionError struct {
	Sym   sx.Sym
	Words int // size of the word list
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("cannot alias %s: %s (%d words)", e.Sym, ErrAliasExhausted.Error(), e.Words)
}

// Unwrap makes ExhaustionError match ErrAliasExhausted with errors.Is.
func (e *ExhaustionError) Unwrap() error {
	return ErrAliasExhausted
}

// --- Strategies ------------------------------------------------------------

// Strategy selects one of n > 0 free words, which are presented in lexicographic
// order. It returns an index 0 ≤ i < n.
type Strategy func(n int) int

// Ordered is a strategy always selecting the lexicographically smallest free word.
// It makes aliasing deterministic.
func Ordered() Strategy {
	return func(int) int { return 0 }
}

// Random is a strategy selecting words at random, using a source of randomness
// r. If r is nil, a randomly seeded generator is used. The strategy is safe for
// concurrent use.
func Random(r *rand.Rand) Strategy {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	var mx sync.Mutex
	return func(n int) int {
		mx.Lock()
		defer mx.Unlock()
		return r.IntN(n)
	}
}

// Seeded is a random strategy with a fixed seed. Aliasing the same tree with the
// same seed will always select the same words.
func Seeded(seed uint64) Strategy {
	return Random(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// --- Alias table -----------------------------------------------------------

// Table records the aliases of a single aliasing run. It maps generated
// identifiers to words, never handing out a word twice.
type Table struct {
	free    *treeset.Set // words not yet handed out, sorted
	size    int
	aliases map[sx.Sym]sx.Sym
	order   []sx.Sym // generated identifiers in order of assignment
}

// NewTable creates an alias table drawing from a word list. Words for which
// taken returns true will not be handed out. taken may be nil.
func NewTable(words WordList, taken func(string) bool) *Table {
	t := &Table{
		free:    treeset.NewWithStringComparator(),
		size:    words.Len(),
		aliases: make(map[sx.Sym]sx.Sym),
	}
	for _, w := range words.words {
		if taken == nil || !taken(w) {
			t.free.Add(w)
		}
	}
	return t
}

// Lookup returns the alias of a generated identifier, if one has been assigned.
func (t *Table) Lookup(s sx.Sym) (sx.Sym, bool) {
	a, ok := t.aliases[s]
	return a, ok
}

// Alias returns the alias of s, assigning a fresh word if s has none yet.
// Fails with an *ExhaustionError if no free word is left.
func (t *Table) Alias(s sx.Sym, choose Strategy) (sx.Sym, error) {
	if a, ok := t.aliases[s]; ok {
		return a, nil
	}
	n := t.free.Size()
	if n == 0 {
		tracer().Errorf("no word left to alias %s", s)
		return s, &ExhaustionError{Sym: s, Words: t.size}
	}
	i := choose(n)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("alias strategy selected word #%d out of %d", i, n))
	}
	it := t.free.Iterator()
	for it.Next() && i > 0 {
		i--
	}
	w := it.Value().(string)
	t.free.Remove(w)
	a := sx.Sym(w)
	t.aliases[s] = a
	t.order = append(t.order, s)
	return a, nil
}

// Len returns the number of aliases assigned.
func (t *Table) Len() int {
	return len(t.order)
}

// Free returns the number of words still available.
func (t *Table) Free() int {
	return t.free.Size()
}

// Each calls f for every assigned alias, in order of assignment.
func (t *Table) Each(f func(gensym, alias sx.Sym)) {
	for _, s := range t.order {
		f(s, t.aliases[s])
	}
}
