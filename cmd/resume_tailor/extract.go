package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/document"
	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structural template from a DOCX resume",
	Long:  "Walks the source document's tables in document order and records every content-bearing position, stripped of content. The resulting template is the positional contract later filled by generate.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractOutputFile string
	extractConfigFile string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to the source DOCX resume (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "document_template.json", "Path to the output template JSON file")
	extractCmd.Flags().StringVar(&extractConfigFile, "config", "", "Path to a JSON config file supplying defaults")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a template summary")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	resumeFile := extractResumeFile
	outputFile := extractOutputFile
	if extractConfigFile != "" {
		fileCfg, err := config.LoadConfig(extractConfigFile)
		if err != nil {
			return err
		}
		if resumeFile == "" {
			resumeFile = fileCfg.Resume
		}
		// The config's template path is this command's output artifact.
		if outputFile == "document_template.json" && fileCfg.Template != "" {
			outputFile = fileCfg.Template
		}
	}
	if resumeFile == "" {
		return fmt.Errorf("resume is required (via --resume or --config)")
	}

	doc, err := document.Open(resumeFile)
	if err != nil {
		return err
	}
	defer func() { _ = doc.Close() }()

	tmpl := extraction.Extract(doc)

	if err := extraction.SaveTemplate(tmpl, outputFile); err != nil {
		return err
	}

	// Validate the written artifact against its schema (if the schema file
	// can be located from this working directory).
	if schemaPath := schemas.ResolveSchemaPath("schemas/template.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, outputFile); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated template does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate template against schema: %v\n", err)
		}
	}

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintTemplate(tmpl)
	}

	if len(tmpl.Sections) == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "Warning: document contains no tables; template is empty and generate will have nothing to fill")
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d tables (%d slots)\n", len(tmpl.Sections), tmpl.SlotCount())
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputFile)

	return nil
}
