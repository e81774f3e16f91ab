package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"crosswarped.com/boggle/pkg/wordlist"
)

// config holds the settings a TOML file may provide. Flags set on the command
// line take precedence.
type config struct {
	// Dictionary is a word list file; empty means the bundled list.
	Dictionary    string `toml:"dictionary"`
	Separator     string `toml:"separator"`
	MinWordLength int    `toml:"min_word_length"`
	CacheDir      string `toml:"cache_dir"`
	RedisAddr     string `toml:"redis_addr"`
}

func defaultConfig() config {
	return config{Separator: wordlist.DefaultSeparator}
}

// defaultConfigPath is <user config dir>/bgcli/config.toml, or "" if the
// platform has no config dir.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bgcli", "config.toml")
}

// loadConfig decodes the file at path over the defaults. A missing file is
// only an error when the path was asked for explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return defaultConfig(), nil
	}
	if err != nil {
		return config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user actually set.
func (cfg *config) applyFlags(flags *pflag.FlagSet, opts *options) {
	if flags.Changed("dict") {
		cfg.Dictionary = opts.dictionary
	}
	if flags.Changed("sep") {
		cfg.Separator = opts.separator
	}
	if flags.Changed("min-length") {
		cfg.MinWordLength = opts.minWordLength
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = opts.cacheDir
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = opts.redisAddr
	}
}
