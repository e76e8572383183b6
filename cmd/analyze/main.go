// Package main is a command line client for the LinkedIn Profile Analyzer API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a LinkedIn profile export",
	Long:  "Submit a LinkedIn profile PDF, with an optional banner and photo, to the analyzer API and print the scored analysis.",
	RunE:  runAnalyze,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
