package main

import (
	"os"

	"github.com/katalvlaran/lvsearch/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
