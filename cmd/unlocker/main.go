package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/unlocker/internal/cli"
)

func main() {
	cmd := cli.NewApp().NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "unlocker: %v\n", err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
