package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/gap"
	"github.com/jonathan/skill-advisor/internal/llm"
	"github.com/jonathan/skill-advisor/internal/observability"
)

var analyzeGapCmd = &cobra.Command{
	Use:   "analyze-gap",
	Short: "Analyze the skill gap between a current and target role",
	Long:  "Asks the generative model which skills are missing for the target role and how to close the gap, producing a GapAnalysis JSON.",
	RunE:  runAnalyzeGap,
}

var (
	analyzeGapCurrentRole string
	analyzeGapTargetRole  string
	analyzeGapSkills      []string
	analyzeGapOutput      string
	analyzeGapAPIKey      string
	analyzeGapVerbose     bool
)

func init() {
	analyzeGapCmd.Flags().StringVarP(&analyzeGapCurrentRole, "current-role", "c", "", "Current role title")
	analyzeGapCmd.Flags().StringVarP(&analyzeGapTargetRole, "target-role", "t", "", "Target role title (required)")
	analyzeGapCmd.Flags().StringSliceVarP(&analyzeGapSkills, "skills", "s", nil, "Current skills (comma-separated)")
	analyzeGapCmd.Flags().StringVarP(&analyzeGapOutput, "out", "o", "", "Path to output GapAnalysis JSON file (prints to stdout if omitted)")
	analyzeGapCmd.Flags().StringVar(&analyzeGapAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeGapCmd.Flags().BoolVarP(&analyzeGapVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := analyzeGapCmd.MarkFlagRequired("target-role"); err != nil {
		panic(fmt.Sprintf("failed to mark target-role flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeGapCmd)
}

func runAnalyzeGap(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := resolveAPIKey(analyzeGapAPIKey)
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create generative client: %w", err)
	}
	defer client.Close()

	analyzer, err := gap.NewAnalyzer(client)
	if err != nil {
		return err
	}
	analyzer.SetVerbose(analyzeGapVerbose)

	analysis, err := analyzer.AnalyzeGap(ctx, analyzeGapSkills, analyzeGapTargetRole, analyzeGapCurrentRole)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	if analyzeGapVerbose {
		observability.NewPrinter(os.Stdout).PrintGapAnalysis(analysis)
	}

	return writeJSONOutput(analysis, analyzeGapOutput,
		fmt.Sprintf("Identified %d missing skills", len(analysis.MissingSkills)))
}

// resolveAPIKey prefers the flag value over the environment.
func resolveAPIKey(flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// writeJSONOutput marshals v with indentation to the given path, or stdout
// when no path is set.
func writeJSONOutput(v any, path, summary string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s -> %s\n", summary, path)
	return nil
}
