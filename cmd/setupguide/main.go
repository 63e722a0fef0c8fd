package main

import (
	"github.com/tacogips/setupguide/internal/cli"
)

func main() {
	// Version information is embedded in internal/build and may be
	// overridden via ldflags.
	cli.Execute()
}
