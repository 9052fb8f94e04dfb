// Command reference serves the generated API reference browser: a Go
// package tree is introspected once at startup and its doc comments are
// rendered as Markdown inside a shared HTML layout.
package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "reference:", err)
		os.Exit(1)
	}
}
