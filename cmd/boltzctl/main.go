package main

import (
	"os"

	"github.com/foldlab/boltzctl/cmd/boltzctl/cmd"
	"github.com/foldlab/boltzctl/internal/common"
)

// Config is handled by cmd/params.go
func main() {
	common.ConfigureCommandLineLogging()
	err := cmd.RootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
