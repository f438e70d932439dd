package main

import (
	"fmt"
	"os"

	"github.com/drillbur/drillbur-setup/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env with DRILLBUR_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
