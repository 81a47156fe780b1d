// Package main implements the resume_tailor CLI: extract a structural
// template from a DOCX resume, then generate a tailored copy against a job
// description.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Tailor a DOCX resume to a job description",
	Long:  "Resume Tailor extracts a positional template from a formatted DOCX resume and regenerates the document with bullet content rewritten toward a target job description.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
