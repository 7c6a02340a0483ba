package config

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "ac6.toml"

// DefaultStorePath is used when store.path is not set.
const DefaultStorePath = "~/.local/share/ac6/builds.db"

// StorePath returns the configured store path with ~ expanded.
func (c *Config) StorePath() (string, error) {
	path := c.Store.Path
	if path == "" {
		path = DefaultStorePath
	}
	return homedir.Expand(path)
}

// CatalogPath returns the configured catalog file with ~ expanded, or "".
func (c *Config) CatalogPath() (string, error) {
	if c.Catalog.Path == "" {
		return "", nil
	}
	return homedir.Expand(c.Catalog.Path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
