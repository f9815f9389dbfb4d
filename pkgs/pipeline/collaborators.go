package pipeline

import (
	"context"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

type CompetitorFinder interface {
	FindCompetitors(ctx context.Context, company models.CompanyInfo) ([]string, error)
}

// VideoSource discovers videos and fetches their details, transcripts and comments.
// GetVideoDetails returns (nil, nil) when the video does not exist.
type VideoSource interface {
	SearchVideos(ctx context.Context, name, objective string) ([]models.VideoRecord, error)
	GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error)
	FetchTranscript(ctx context.Context, videoID string) (string, error)
	FetchComments(ctx context.Context, videoID string) ([]string, error)
}

type ParameterSource interface {
	Parameters(ctx context.Context, domain, objective string) (models.ParameterSet, error)
}

type RatingScorer interface {
	RateVideo(ctx context.Context, details *models.VideoDetails, params models.ParameterSet) (*models.RatingMap, error)
}

type ImpactCalculator interface {
	CalculateImpact(details *models.VideoDetails, ratings *models.RatingMap) (*models.ImpactMap, error)
}

type ReportGenerator interface {
	GenerateReport(details *models.VideoDetails, impact *models.ImpactMap) (string, error)
}

type InsightGenerator interface {
	GenerateInsights(ctx context.Context, report string) ([]string, error)
}

type SentimentScorer interface {
	AnalyzeSentiment(ctx context.Context, comments []string) (*models.SentimentResult, error)
}

// Collaborators bundles the external capabilities a pipeline run consumes.
type Collaborators struct {
	Competitors CompetitorFinder
	Videos      VideoSource
	Parameters  ParameterSource
	Ratings     RatingScorer
	Impact      ImpactCalculator
	Reports     ReportGenerator
	Insights    InsightGenerator
	Sentiment   SentimentScorer
}
