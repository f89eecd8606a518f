package main

import (
	"os"

	"github.com/henderiw/rampart/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
