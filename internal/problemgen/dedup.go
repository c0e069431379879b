package problemgen

import (
	"fmt"
	"strings"
)

// DedupValidator rejects a problem whose title duplicates one already in
// the bank. Case and surrounding whitespace are ignored.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(p *Problem, input GenerateInput) *ValidationError {
	title := normalizeTitle(p.Title)
	for _, prior := range input.PriorTitles {
		if normalizeTitle(prior) == title {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("title %q duplicates an existing problem", p.Title),
				Retryable: true,
			}
		}
	}
	return nil
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// buildDedup formats existing titles for the prompt, respecting the max limit.
func buildDedup(titles []string, max int) string {
	if len(titles) == 0 {
		return "None"
	}

	// Keep only the most recent N titles.
	if max > 0 && len(titles) > max {
		titles = titles[len(titles)-max:]
	}

	var b strings.Builder
	for i, t := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
