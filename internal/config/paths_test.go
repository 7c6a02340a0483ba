package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStorePath(t *testing.T) {
	cfg := &Config{}
	path, err := cfg.StorePath()
	if err != nil {
		t.Fatalf("StorePath error: %v", err)
	}
	if strings.HasPrefix(path, "~") {
		t.Fatalf("expected ~ to be expanded, got %s", path)
	}
	if filepath.Base(path) != "builds.db" {
		t.Fatalf("unexpected default store path %s", path)
	}

	cfg.Store.Path = "/tmp/x.db"
	path, err = cfg.StorePath()
	if err != nil || path != "/tmp/x.db" {
		t.Fatalf("unexpected store path %s (%v)", path, err)
	}
}

func TestCatalogPath(t *testing.T) {
	cfg := &Config{}
	path, err := cfg.CatalogPath()
	if err != nil || path != "" {
		t.Fatalf("expected empty catalog path, got %q (%v)", path, err)
	}
	cfg.Catalog.Path = "~/catalog.yaml"
	path, err = cfg.CatalogPath()
	if err != nil {
		t.Fatalf("CatalogPath error: %v", err)
	}
	if strings.HasPrefix(path, "~") {
		t.Fatalf("expected ~ to be expanded, got %s", path)
	}
}
