// main is the entry point for the dealscore CLI.
package main

import (
	"github.com/mariam-attia/dealscore/cmd"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/history"
)

func main() {
	cmd.SetStoreManager(history.Manager)

	defer history.CloseStores()
	defer func() { _ = cmd.StopProfiling() }()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
