package tailoring

import (
	"context"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
)

// ExtractKeywords asks the provider for the skills and qualifications a
// recruiter would want to see for the given job description. The response is
// expected as a comma-separated list.
func ExtractKeywords(ctx context.Context, client llm.Client, jobDescription string) ([]string, error) {
	template := prompts.MustGet("tailoring.json", "extract-keywords")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
	})

	response, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &ProviderError{
			Message: "keyword extraction failed",
			Cause:   err,
		}
	}

	return parseKeywordList(response), nil
}

// parseKeywordList splits a comma-separated response, dropping empties.
func parseKeywordList(response string) []string {
	parts := strings.Split(response, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if keyword := strings.TrimSpace(part); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}
