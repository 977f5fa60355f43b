package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
)

// config holds zpay32cli's persistent defaults, loaded from an ini-style
// config file the same way lnd's own daemon config is loaded, rather
// than from the per-command flags urfave/cli parses. Only Verbose is
// consulted by the commands; Network is parsed but not read, and the new
// command takes its prefix from its own --prefix flag.
type config struct {
	Network string `long:"network" description:"default bech32 chain prefix (bc, tb, bcrt)" default:"bc"`
	Verbose bool   `long:"verbose" description:"enable debug logging of the codec"`
}

// loadConfig parses an optional ini-style config file at path into a
// config, falling back to defaults if path is empty or missing.
func loadConfig(path string) (*config, error) {
	cfg := &config{Network: "bc"}

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := flags.NewParser(cfg, flags.Default)
	if err := flags.NewIniParser(parser).ParseFile(path); err != nil {
		return nil, err
	}

	return cfg, nil
}
