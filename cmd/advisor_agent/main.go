// Package main provides the entry point for the Skill Advisor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisor_agent",
	Short: "Skill gap analysis and course recommendation",
	Long:  "Skill Advisor derives the skills a user is missing for a target role, gathers course candidates covering them, and ranks the courses by fit.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
