package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/alias"
	"github.com/npillmayer/sxtools/sx/sxcodec"
)

// defaultConfigFile is loaded if present and no config file is given.
const defaultConfigFile = "sxtool.toml"

// Config holds the settings of sxtool.
type Config struct {
	Trace           string `toml:"trace"`
	KeepLineMarkers bool   `toml:"keep_line_markers"`
	Alias           bool   `toml:"alias"`
	AliasStrategy   string `toml:"alias_strategy"`
	Seed            uint64 `toml:"seed"`
	WordList        string `toml:"wordlist"`
	Jobs            int    `toml:"jobs"`
	Format          string `toml:"format"`

	words alias.WordList // loaded word list
}

func defaultConfig() Config {
	return Config{
		Trace:         "Error",
		Alias:         true,
		AliasStrategy: "random",
		Format:        "text",
	}
}

// loadConfig reads a TOML config file. If path is empty, the default config file is
// read, if it exists.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		tracer().Infof("config %s: unknown key %q ignored", path, key.String())
	}
	tracer().Debugf("loaded config from %s", path)
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AliasStrategy {
	case "random", "ordered", "stable":
	default:
		return fmt.Errorf("unknown alias strategy %q (want random|ordered|stable)", c.AliasStrategy)
	}
	switch c.Format {
	case "text", "msgpack":
	default:
		return fmt.Errorf("unknown output format %q (want text|msgpack)", c.Format)
	}
	if c.Jobs < 0 {
		return errors.New("number of jobs must not be negative")
	}
	return nil
}

// loadWords loads the configured word list, or the default list of animal names.
func (c *Config) loadWords() error {
	if c.WordList == "" {
		c.words = alias.Animals()
		return nil
	}
	f, err := os.Open(c.WordList)
	if err != nil {
		return fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	if c.words, err = alias.ReadWordList(f); err != nil {
		return fmt.Errorf("reading word list %s: %w", c.WordList, err)
	}
	if c.words.Len() == 0 {
		return fmt.Errorf("word list %s is empty", c.WordList)
	}
	tracer().Debugf("loaded %d words from %s", c.words.Len(), c.WordList)
	return nil
}

// aliaserFor creates the aliaser for a tree. With the stable strategy, the seed is
// derived from the tree content, so equal input gets equal aliases on every run.
func (c *Config) aliaserFor(tree sx.Node) (*alias.Aliaser, error) {
	words := c.words
	if words.Len() == 0 {
		words = alias.Animals()
	}
	var strategy alias.Strategy
	switch c.AliasStrategy {
	case "ordered":
		strategy = alias.Ordered()
	case "stable":
		seed, err := sxcodec.Seed(tree)
		if err != nil {
			return nil, err
		}
		strategy = alias.Seeded(seed ^ c.Seed)
	default:
		if c.Seed != 0 {
			strategy = alias.Seeded(c.Seed)
		} else {
			strategy = alias.Random(nil)
		}
	}
	return alias.New(words, alias.WithStrategy(strategy)), nil
}
