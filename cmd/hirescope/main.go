// Package main provides the entry point for the HireScope dashboard server
// and its offline data commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hirescope",
	Short: "Recruiting dashboard backend",
	Long:  "HireScope serves job folders, synthesized candidate records, and assessment criteria over a REST API, proxying analysis to an external scoring backend.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
