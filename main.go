// Grow - a command-line personal productivity tracker
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/grow-cli/grow/cmd"
)

func main() {
	// Optional .env for GROW_DATABASE and friends; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
