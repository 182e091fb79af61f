// Package main provides the entry point for the careeriq analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careeriq",
	Short: "Resume vs job description analysis",
	Long:  "careeriq scores a resume against a job description and reports matched and missing skills, role readiness, targeted suggestions, and learning roadmaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
