// Package tailoring rewrites resume schema content against a job description
// using a completion provider. The provider is a free-text generator and is
// never trusted: its output is parsed and validated against the baseline
// schema's shape before anything downstream sees it.
package tailoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TailorSchema rewrites the baseline schema's bullet text toward the job
// description. The result has the same shape as the baseline: same entries in
// the same order, same bullet count per entry, every bullet non-empty.
// Titles, companies, and dates are carried over from the baseline regardless
// of what the provider returned.
func TailorSchema(ctx context.Context, client llm.Client, baseline *types.ResumeSchema, keywords []string, jobDescription string) (*types.ResumeSchema, error) {
	baselineJSON, err := json.MarshalIndent(baseline, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal baseline schema: %w", err)
	}

	template := prompts.MustGet("tailoring.json", "tailor-schema")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
		"Keywords":       strings.Join(keywords, ", "),
		"ResumeJSON":     string(baselineJSON),
	})

	response, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &ProviderError{
			Message: "schema tailoring failed",
			Cause:   err,
		}
	}

	tailored, err := parseTailoredSchema(response, baseline)
	if err != nil {
		return nil, err
	}

	restoreHeadings(tailored, baseline)
	return tailored, nil
}

// parseTailoredSchema is the strict parse-then-validate step: the raw
// provider output either becomes a well-typed schema with the baseline's
// cardinality, or a SchemaMismatchError. Truncating or padding to fit is
// never an option.
func parseTailoredSchema(response string, baseline *types.ResumeSchema) (*types.ResumeSchema, error) {
	cleaned := llm.CleanJSONBlock(response)

	var tailored types.ResumeSchema
	if err := json.Unmarshal([]byte(cleaned), &tailored); err != nil {
		return nil, &SchemaMismatchError{
			Message:     fmt.Sprintf("provider output is not valid schema JSON: %v", err),
			RawResponse: response,
		}
	}

	if !tailored.Shape().Equal(baseline.Shape()) {
		return nil, &SchemaMismatchError{
			Message: fmt.Sprintf(
				"provider output shape disagrees with the baseline: got %s, want %s",
				describeShape(tailored.Shape()), describeShape(baseline.Shape())),
			RawResponse: response,
		}
	}

	for i, exp := range tailored.Experiences {
		for j, bullet := range exp.BulletPoints {
			if strings.TrimSpace(bullet.Text) == "" {
				return nil, &SchemaMismatchError{
					Message:     fmt.Sprintf("experience %d bullet %d is empty", i, j),
					RawResponse: response,
				}
			}
		}
	}
	for i, proj := range tailored.Projects {
		for j, bullet := range proj.BulletPoints {
			if strings.TrimSpace(bullet.Text) == "" {
				return nil, &SchemaMismatchError{
					Message:     fmt.Sprintf("project %d bullet %d is empty", i, j),
					RawResponse: response,
				}
			}
		}
	}

	return &tailored, nil
}

// restoreHeadings copies titles, companies, and dates from the baseline so
// the provider can only ever influence bullet text.
func restoreHeadings(tailored, baseline *types.ResumeSchema) {
	for i := range tailored.Experiences {
		tailored.Experiences[i].Title = baseline.Experiences[i].Title
		tailored.Experiences[i].Company = baseline.Experiences[i].Company
		tailored.Experiences[i].Dates = baseline.Experiences[i].Dates
	}
	for i := range tailored.Projects {
		tailored.Projects[i].Title = baseline.Projects[i].Title
	}
}

func describeShape(shape types.Shape) string {
	return fmt.Sprintf("%d experiences %v, %d projects %v",
		len(shape.Experiences), shape.Experiences, len(shape.Projects), shape.Projects)
}
