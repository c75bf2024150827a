package main

import (
	"os"

	"github.com/sgaunet/pagewindow/pkg/cli"
)

var version = "development"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
