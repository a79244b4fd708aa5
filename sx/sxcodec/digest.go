package sxcodec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/binary"

	"github.com/cnf/structhash"
	"github.com/npillmayer/sxtools/sx"
)

const digestVersion = 1

// Digest returns a content hash of a tree. Equal trees have equal digests.
// Function references are hashed by name.
func Digest(n sx.Node) (string, error) {
	wn, err := toWire(n, true)
	if err != nil {
		return "", err
	}
	return structhash.Hash(wn, digestVersion)
}

// Seed derives a 64-bit number from the content of a tree, e.g. to seed a random
// generator for deterministic aliasing.
func Seed(n sx.Node) (uint64, error) {
	wn, err := toWire(n, true)
	if err != nil {
		return 0, err
	}
	sum := structhash.Md5(wn, digestVersion)
	return binary.BigEndian.Uint64(sum[:8]), nil
}
