// Package main provides the entry point for the career tools HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_tools",
	Short: "Career tools HTTP API server",
	Long:  "Career tools serves the AI-backed generation endpoints behind the interactive career tools: cover letter generation, salary analysis, and leadership readiness scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
