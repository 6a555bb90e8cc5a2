package main

import (
	"fmt"
	"os"

	"careconnect_backend/internals/cli"
	"careconnect_backend/internals/configs"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	configs.LoadEnv()

	cmd := cli.NewRootCommand(os.Stdout, cli.BuildInfo{Version: version, Commit: commit})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
