// Command redirector forwards every request to the externally hosted
// documentation site, rewriting the "reference" path token to "api" on the
// way out.
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
		fmt.Fprintln(os.Stderr, "redirector:", err)
		os.Exit(1)
	}
}
