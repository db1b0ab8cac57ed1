// Command droppath converts dropped file URLs into local scan targets.
package main

import (
	"os"

	"github.com/custodia-labs/droppath/internal/adapters/driving/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(build)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
