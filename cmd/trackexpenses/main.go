package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/HAVANA9D/TrackExpenses/internal/commands"
)

func main() {
	// Overrides from a local .env, when present.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
