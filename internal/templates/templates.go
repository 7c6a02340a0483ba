// Package templates holds the files ac6 writes or renders from embedded copies.
package templates

import (
	"embed"
	"path"
)

//go:embed files
var files embed.FS

const root = "files"

// Read returns the embedded template at name, relative to the template root.
func Read(name string) ([]byte, error) {
	return files.ReadFile(path.Join(root, name))
}
