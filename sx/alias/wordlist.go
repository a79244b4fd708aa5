package alias

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	_ "embed"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/sxtools/sx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordList is an immutable list of lowercase words to draw aliases from.
type WordList struct {
	words []string
}

// NewWordList creates a word list. Words are lowercased, and empty words,
// duplicates and words which would not be valid plain identifiers are dropped.
// Order is preserved otherwise.
func NewWordList(words []string) WordList {
	lower := cases.Lower(language.Und)
	seen := make(map[string]bool, len(words))
	wl := WordList{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = lower.String(strings.TrimSpace(w))
		if w == "" || seen[w] || strings.ContainsAny(w, sx.GensymMarker+" \t()\";") {
			continue
		}
		seen[w] = true
		wl.words = append(wl.words, w)
	}
	return wl
}

// ReadWordList reads a word list with one word per line. Lines starting with '#'
// are comments.
func ReadWordList(r io.Reader) (WordList, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return WordList{}, err
	}
	return NewWordList(words), nil
}

// Len returns the number of words.
func (wl WordList) Len() int {
	return len(wl.words)
}

// Word returns word #i.
func (wl WordList) Word(i int) string {
	return wl.words[i]
}

// Words returns a copy of the words.
func (wl WordList) Words() []string {
	w := make([]string, len(wl.words))
	copy(w, wl.words)
	return w
}

//go:embed animals.txt
var animalsText string

var animals WordList
var animalsOnce sync.Once // monitors one-time loading of the animals word list

// Animals returns the default word list, a list of animal names.
func Animals() WordList {
	animalsOnce.Do(func() {
		var err error
		animals, err = ReadWordList(strings.NewReader(animalsText))
		if err != nil {
			panic(err) // reading from a string does not fail
		}
		tracer().Debugf("loaded %d animal names", animals.Len())
	})
	return animals
}
