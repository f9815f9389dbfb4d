package gemini_magic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

const maxCompetitors = 5

type competitorReply struct {
	Competitors []string `json:"competitors"`
}

// FindCompetitors asks the model for the company's main competitors.
func (a *Analyzer) FindCompetitors(ctx context.Context, company models.CompanyInfo) ([]string, error) {
	companyJSON, err := json.Marshal(company)
	if err != nil {
		return nil, fmt.Errorf("marshal company: %w", err)
	}

	var reply competitorReply
	prompt := fmt.Sprintf(competitorPrompt, companyJSON, maxCompetitors)
	if err := a.generateJSON(ctx, "find competitors", prompt, &reply); err != nil {
		return nil, err
	}
	return cleanCompetitors(reply.Competitors, company.Name), nil
}

func cleanCompetitors(names []string, self string) []string {
	seen := map[string]bool{strings.ToLower(strings.TrimSpace(self)): true}
	out := []string{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
		if len(out) == maxCompetitors {
			break
		}
	}
	return out
}
