package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

// ReportGenerator renders the per-video report handed to the insight generator.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) GenerateReport(details *models.VideoDetails, impact *models.ImpactMap) (string, error) {
	if details == nil {
		return "", ErrNilDetails
	}

	var b strings.Builder
	fmt.Fprintf(&b, "VIDEO: %s\n", details.Title)
	if details.ChannelTitle != "" {
		fmt.Fprintf(&b, "CHANNEL: %s\n", details.ChannelTitle)
	}
	if details.Duration != "" {
		fmt.Fprintf(&b, "DURATION: %s\n", details.Duration)
	}
	fmt.Fprintf(&b, "STATS: %d views, %d likes, %d comments\n", details.ViewCount, details.LikeCount, details.CommentCount)
	fmt.Fprintf(&b, "ENGAGEMENT RATE: %.4f\n", EngagementRate(details))

	entries := impact.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.OverallImpact > entries[j].Value.OverallImpact
	})

	b.WriteString("\nPARAMETER IMPACT (highest first):\n")
	if len(entries) == 0 {
		b.WriteString("- no parameters rated\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: score %.1f/10, overall impact %.4f\n", e.Key, e.Value.ParameterScore, e.Value.OverallImpact)
	}

	if desc := strings.TrimSpace(details.Description); desc != "" {
		b.WriteString("\nDESCRIPTION:\n")
		b.WriteString(truncate(desc, 600))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
