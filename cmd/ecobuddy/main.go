package main

import (
	"os"

	"github.com/ecobuddy/ecobuddy/internal/cli"
	"github.com/ecobuddy/ecobuddy/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return 1
	}
	return 0
}
