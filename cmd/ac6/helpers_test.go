package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes body to a temp ac6.toml whose store lives in the same
// temp dir, and returns the config path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ac6.toml")
	content := fmt.Sprintf("[store]\npath = %q\n\n%s", filepath.Join(dir, "builds.db"), body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// runCLI executes ac6 with args and color disabled.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"ac6", "--no-color"}, args...)
	err := execute(full, &out, &errOut)
	return out.String(), errOut.String(), err
}
