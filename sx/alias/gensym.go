package alias

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/fp"
)

// IsGensym is a predicate for generated identifiers.
func IsGensym(n sx.Node) bool {
	s, ok := n.(sx.Sym)
	return ok && strings.Contains(string(s), sx.GensymMarker)
}

var gensymPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^##(.+)#\d+$`),
	regexp.MustCompile(`^#\d+#(.+)$`),
	regexp.MustCompile(`^(.+)#\d+$`),
}

// GensymName recovers the base name of a generated identifier:
//
//    ##tmp#17  =>  tmp
//    #3#x      =>  x
//    tmp#17    =>  tmp
//
// If no base name can be found, "x" is returned.
func GensymName(s sx.Sym) string {
	for _, re := range gensymPatterns {
		if m := re.FindStringSubmatch(string(s)); m != nil {
			return m[1]
		}
	}
	return "x"
}

// GensymIDs replaces generated identifiers by their base name and a running
// number, in order of first occurence:
//
//    (call f ##a#17 ##b#3 ##a#17)  =>  (call f a_1 b_2 a_1)
//
// Unlike aliasing, this is deterministic and never fails.
func GensymIDs(tree sx.Node) sx.Node {
	ids := make(map[sx.Sym]sx.Sym)
	return fp.Prewalk(func(n sx.Node) sx.Node {
		if !IsGensym(n) {
			return n
		}
		s := n.(sx.Sym)
		if id, ok := ids[s]; ok {
			return id
		}
		id := sx.Sym(GensymName(s) + "_" + strconv.Itoa(len(ids)+1))
		ids[s] = id
		return id
	}, tree)
}
