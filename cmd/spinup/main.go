package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spinup-sh/spinup/cmd/spinup/commands"
	"github.com/spinup-sh/spinup/internal/logger"
)

func main() {
	// A .env file is optional; SPINUP_* variables set there act as defaults
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	logger.Initialize()

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
