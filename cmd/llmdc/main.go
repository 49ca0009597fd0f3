package main

import (
	"os"

	"github.com/stevenic/llmdc/cmd/llmdc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
