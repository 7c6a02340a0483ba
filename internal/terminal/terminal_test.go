package terminal

import "testing"

func TestIsInteractive(t *testing.T) {
	// go test pipes stdout, so the result is only checked for not panicking.
	_ = IsInteractive()
}
