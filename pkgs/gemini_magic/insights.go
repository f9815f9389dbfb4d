package gemini_magic

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

const maxInsights = 5

// GenerateInsights turns a video report into short takeaway lines.
func (a *Analyzer) GenerateInsights(ctx context.Context, report string) ([]string, error) {
	var insights []string
	prompt := fmt.Sprintf(insightPrompt, maxInsights, report)
	err := a.generateWithRetry(ctx, "generate insights", prompt, func(text string) error {
		insights = parseInsights(text)
		if len(insights) == 0 {
			return fmt.Errorf("%w: no insight lines in %q", ErrEmptyResponse, text)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return insights, nil
}

// parseInsights strips list markers and numbering from each non-empty line.
// Heading lines ending in a colon are dropped.
func parseInsights(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•# ")
		line = trimNumbering(line)
		line = strings.Trim(strings.TrimSpace(line), "*")
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		out = append(out, line)
		if len(out) == maxInsights {
			break
		}
	}
	return out
}

func trimNumbering(line string) string {
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
