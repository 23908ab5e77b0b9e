package main

import (
	"os"

	"github.com/osokolowskii/fm-algorithm/cmd/fmscout/commands"
)

// main is the entry point for the fmscout CLI
// ⭐ single CLI entry point: go run ./cmd/fmscout [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
