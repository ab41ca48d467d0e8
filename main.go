// main is the entry point for the magarea CLI.
package main

import (
	"github.com/huangsam/magarea/cmd"
	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/internal/history"
)

func main() {
	cmd.SetHistoryManager(history.Manager)
	defer history.CloseStores()

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		history.CloseStores()
		contract.LogFatal("Command failed", err)
	}
}
