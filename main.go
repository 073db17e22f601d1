// Command mkcourses builds the course index of a notes directory.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/mkcourses/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
