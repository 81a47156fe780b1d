package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/document"
	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/population"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume from a schema and job description",
	Long:  "Rewrites the resume schema's bullet content toward the job description via the completion provider, then populates the structural template and writes a new DOCX. The output is written only after the tailored schema has been validated against the template.",
	RunE:  runGenerate,
}

var (
	generateResumeFile   string
	generateSchemaFile   string
	generateTemplateFile string
	generateJobFile      string
	generateJobURL       string
	generateOutputFile   string
	generateAPIKey       string
	generateModel        string
	generateTimeout      int
	generateSchemaOut    string
	generateKeywordsOut  string
	generateConfigFile   string
	generateVerbose      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateResumeFile, "resume", "r", "", "Path to the source DOCX resume (required)")
	generateCmd.Flags().StringVarP(&generateSchemaFile, "schema", "s", "", "Path to the resume schema JSON file (required)")
	generateCmd.Flags().StringVarP(&generateTemplateFile, "template", "t", "", "Path to the structural template JSON file (required)")
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to a job description text file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL to fetch the job posting from")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to the output DOCX file (required)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Override the model used for schema tailoring")
	generateCmd.Flags().IntVar(&generateTimeout, "timeout", 0, "Deadline in seconds for the whole run (0 = none)")
	generateCmd.Flags().StringVar(&generateSchemaOut, "schema-out", "", "Also write the tailored schema JSON to this path")
	generateCmd.Flags().StringVar(&generateKeywordsOut, "keywords-out", "", "Also write the extracted keywords to this path")
	generateCmd.Flags().StringVar(&generateConfigFile, "config", "", "Path to a JSON config file supplying defaults")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := mergedGenerateConfig()
	if err != nil {
		return err
	}

	if cfg.Resume == "" || cfg.Schema == "" || cfg.Template == "" || cfg.Out == "" {
		return fmt.Errorf("resume, schema, template and out are required (via flags or --config)")
	}
	if (cfg.Job == "") == (cfg.JobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	// Validate the baseline schema before spending a provider call on it.
	if schemaPath := schemas.ResolveSchemaPath("schemas/resume.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Schema); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("resume schema %s is invalid: %w", cfg.Schema, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate resume schema: %v\n", err)
		}
	}

	schemaContent, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return fmt.Errorf("failed to read resume schema file: %w", err)
	}
	var baseline types.ResumeSchema
	if err := json.Unmarshal(schemaContent, &baseline); err != nil {
		return fmt.Errorf("failed to unmarshal resume schema JSON: %w", err)
	}

	// The template artifact may have been hand-edited; validate it the same
	// way as the baseline schema before trusting its indexes.
	if schemaPath := schemas.ResolveSchemaPath("schemas/template.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Template); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("template %s is invalid: %w", cfg.Template, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate template: %v\n", err)
		}
	}

	tmpl, err := extraction.LoadTemplate(cfg.Template)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	jobDescription, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	printer := observability.NewPrinter(os.Stdout)

	keywords, err := tailoring.ExtractKeywords(ctx, client, jobDescription)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintKeywords(keywords)
	}

	tailored, err := tailoring.TailorSchema(ctx, client, &baseline, keywords, jobDescription)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintTailoredSummary(tailored)
	}

	if err := writeSideArtifacts(tailored, keywords); err != nil {
		return err
	}

	doc, err := document.Open(cfg.Resume)
	if err != nil {
		return err
	}
	defer func() { _ = doc.Close() }()

	if err := population.Populate(doc, tmpl, tailored); err != nil {
		return err
	}
	if err := doc.Save(cfg.Out); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Tailored resume saved to %s\n", cfg.Out)
	return nil
}

// mergedGenerateConfig layers flag values over the config file (flags win).
func mergedGenerateConfig() (config.Config, error) {
	flags := config.Config{
		Resume:         generateResumeFile,
		Schema:         generateSchemaFile,
		Template:       generateTemplateFile,
		Job:            generateJobFile,
		JobURL:         generateJobURL,
		Out:            generateOutputFile,
		APIKey:         generateAPIKey,
		Model:          generateModel,
		TimeoutSeconds: generateTimeout,
		Verbose:        generateVerbose,
	}

	if generateConfigFile == "" {
		return flags, flags.Validate()
	}

	fileCfg, err := config.LoadConfig(generateConfigFile)
	if err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	merged.Verbose = generateVerbose
	return merged, merged.Validate()
}

func loadJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.JobURL != "" {
		return fetch.JobDescription(ctx, cfg.JobURL)
	}

	content, err := os.ReadFile(cfg.Job)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	jobDescription := strings.TrimSpace(string(content))
	if jobDescription == "" {
		return "", fmt.Errorf("job description file %s is empty", cfg.Job)
	}
	return jobDescription, nil
}

// writeSideArtifacts persists the tailored schema and keyword list when the
// caller asked for them. These are reference copies; a failure here aborts
// before the document is written.
func writeSideArtifacts(tailored *types.ResumeSchema, keywords []string) error {
	if generateSchemaOut != "" {
		data, err := json.MarshalIndent(tailored, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tailored schema: %w", err)
		}
		if err := os.WriteFile(generateSchemaOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write tailored schema: %w", err)
		}
	}

	if generateKeywordsOut != "" {
		content := strings.Join(keywords, "\n") + "\n"
		if err := os.WriteFile(generateKeywordsOut, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write keywords file: %w", err)
		}
	}

	return nil
}
