// Package main provides the entry point for the skillfit CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillfit",
	Short: "Resume and job description skill gap analyzer",
	Long:  "Skillfit extracts skills from resumes and job descriptions, matches them across a skill taxonomy, and produces a weighted fit score with gap recommendations, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
