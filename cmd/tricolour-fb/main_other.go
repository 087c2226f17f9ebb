//go:build !linux

package main

import (
	"fmt"
	"os"
	"runtime"
)

func main() {
	fmt.Fprintf(os.Stderr, "tricolour-fb needs EGL on Linux, not %s\n", runtime.GOOS)
	os.Exit(1)
}
