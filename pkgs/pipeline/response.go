package pipeline

import "github.com/DhruvPatel284/supermind-ART/pkgs/models"

// assemble builds the final response. Every slice is non-nil so empty runs
// serialize as [] rather than null.
func assemble(
	competitors []string,
	acc *accumulator,
	topParameters []models.Pair[float64],
	topImpact []models.Pair[models.ImpactRecord],
	sentiment *models.SentimentResult,
) *models.VideoAnalysisResponse {
	if competitors == nil {
		competitors = []string{}
	}
	return &models.VideoAnalysisResponse{
		Competitors:       competitors,
		VideoAnalysis:     acc.results,
		TopParameters:     topParameters,
		TopImpactMetrics:  topImpact,
		Insights:          acc.insights,
		SentimentAnalysis: sentiment,
		TranscriptLength:  acc.transcript,
	}
}
