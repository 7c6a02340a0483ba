//go:build tools
// +build tools

// Package tools pins the linters and test runners used by CI.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
