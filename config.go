package main

import "errors"

const (
	defaultSourceDir = "."
	defaultOutputDir = "man"
)

// Config names the tree to scan and the directory receiving the pages.
type Config struct {
	SourceDir string
	OutputDir string
}

func DefaultConfig() Config {
	return Config{SourceDir: defaultSourceDir, OutputDir: defaultOutputDir}
}

// configFromArgs fills the config from up to two positionals, keeping the
// defaults for any that are missing.
func configFromArgs(args []string) (Config, error) {
	cfg := DefaultConfig()
	if len(args) > 2 {
		return cfg, errors.New("too many positional arguments")
	}
	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source directory is required")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	return nil
}
