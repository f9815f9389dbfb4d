package pipeline

import (
	"context"
	"log/slog"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

// ProcessedVideo is everything one video contributes to a run.
type ProcessedVideo struct {
	Video      models.VideoRecord
	Details    *models.VideoDetails
	Transcript string
	Comments   []string
	Ratings    *models.RatingMap
	Impact     *models.ImpactMap
	Insights   []string
}

// Result is the per-video record reported in the response.
func (v *ProcessedVideo) Result() models.VideoAnalysisResult {
	insights := v.Insights
	if insights == nil {
		insights = []string{}
	}
	metrics := v.Impact
	if metrics == nil {
		metrics = models.NewOrderedMap[models.ImpactRecord]()
	}
	return models.VideoAnalysisResult{
		VideoID:  v.Video.ID,
		Title:    v.Details.Title,
		Metrics:  metrics,
		Insights: insights,
	}
}

// VideoProcessor runs the per-video collaborator chain. It does not retry.
type VideoProcessor struct {
	deps   Collaborators
	logger *slog.Logger
}

func NewVideoProcessor(deps Collaborators, logger *slog.Logger) *VideoProcessor {
	return &VideoProcessor{deps: deps, logger: logger}
}

// Process analyzes one video. A video without details yields an error of kind
// KindCollaboratorUnavailable and nothing else is fetched for it.
func (vp *VideoProcessor) Process(ctx context.Context, video models.VideoRecord, company models.CompanyInfo) (*ProcessedVideo, error) {
	details, err := vp.deps.Videos.GetVideoDetails(ctx, video.ID)
	if err != nil {
		return nil, collaboratorFailure("get video details "+video.ID, err)
	}
	if details == nil {
		return nil, unavailable("get video details " + video.ID)
	}

	transcript, err := vp.deps.Videos.FetchTranscript(ctx, video.ID)
	if err != nil {
		return nil, collaboratorFailure("fetch transcript "+video.ID, err)
	}

	params, err := vp.deps.Parameters.Parameters(ctx, company.Domain, company.AdObjective)
	if err != nil {
		return nil, collaboratorFailure("derive parameters", err)
	}

	ratings, err := vp.deps.Ratings.RateVideo(ctx, details, params)
	if err != nil {
		return nil, collaboratorFailure("rate video "+video.ID, err)
	}

	impact, err := vp.deps.Impact.CalculateImpact(details, ratings)
	if err != nil {
		return nil, collaboratorFailure("calculate impact "+video.ID, err)
	}

	report, err := vp.deps.Reports.GenerateReport(details, impact)
	if err != nil {
		return nil, collaboratorFailure("generate report "+video.ID, err)
	}

	insights, err := vp.deps.Insights.GenerateInsights(ctx, report)
	if err != nil {
		return nil, collaboratorFailure("generate insights "+video.ID, err)
	}

	comments, err := vp.deps.Videos.FetchComments(ctx, video.ID)
	if err != nil {
		return nil, collaboratorFailure("fetch comments "+video.ID, err)
	}

	vp.logger.Debug("Processed video", "videoId", video.ID, "parameters", len(params), "comments", len(comments), "insights", len(insights))

	return &ProcessedVideo{
		Video:      video,
		Details:    details,
		Transcript: transcript,
		Comments:   comments,
		Ratings:    ratings,
		Impact:     impact,
		Insights:   insights,
	}, nil
}
