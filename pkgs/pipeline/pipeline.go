// Package pipeline aggregates per-video advertising signals into one ranked
// competitive analysis.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

// State is a step of a pipeline run.
type State int

const (
	StateValidating State = iota
	StateDiscovering
	StateIterating
	StateRanking
	StateSentimentScoring
	StateAssembling
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "Validating"
	case StateDiscovering:
		return "Discovering"
	case StateIterating:
		return "Iterating"
	case StateRanking:
		return "Ranking"
	case StateSentimentScoring:
		return "SentimentScoring"
	case StateAssembling:
		return "Assembling"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

type Options struct {
	// IsolateVideoFailures skips a video whose collaborators fail instead of
	// aborting the whole run.
	IsolateVideoFailures bool
	// OnTransition, when set, observes every state change.
	OnTransition func(State)
}

// Pipeline runs a single analysis request. Build a new one per request; a
// Pipeline must not be reused or shared between goroutines.
type Pipeline struct {
	deps      Collaborators
	processor *VideoProcessor
	opts      Options
	logger    *slog.Logger
	state     State
}

func New(deps Collaborators, opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		deps:      deps,
		processor: NewVideoProcessor(deps, logger),
		opts:      opts,
		logger:    logger,
	}
}

func (p *Pipeline) State() State {
	return p.state
}

func (p *Pipeline) transition(s State) {
	p.state = s
	p.logger.Debug("Pipeline state", "state", s.String())
	if p.opts.OnTransition != nil {
		p.opts.OnTransition(s)
	}
}

// accumulator holds request-scoped state built while iterating videos.
type accumulator struct {
	ratings    *models.RatingMap
	impact     *models.ImpactMap
	insights   []string
	comments   CommentPool
	transcript int
	results    []models.VideoAnalysisResult
}

func newAccumulator() *accumulator {
	return &accumulator{
		ratings:  models.NewOrderedMap[float64](),
		impact:   models.NewOrderedMap[models.ImpactRecord](),
		insights: []string{},
		results:  []models.VideoAnalysisResult{},
	}
}

func (a *accumulator) add(v *ProcessedVideo) {
	a.ratings.Merge(v.Ratings)
	a.impact.Merge(v.Impact)
	a.insights = append(a.insights, v.Insights...)
	a.comments.Add(v.Comments...)
	a.transcript += utf8.RuneCountInString(v.Transcript)
	a.results = append(a.results, v.Result())
}

// Run executes the full analysis for company. Any returned error is a *PipelineError.
func (p *Pipeline) Run(ctx context.Context, company models.CompanyInfo) (*models.VideoAnalysisResponse, error) {
	resp, err := p.run(ctx, company)
	if err != nil {
		p.transition(StateFailed)
		var pe *PipelineError
		if !errors.As(err, &pe) {
			err = collaboratorFailure("pipeline", err)
		}
		return nil, err
	}
	p.transition(StateDone)
	return resp, nil
}

func (p *Pipeline) run(ctx context.Context, company models.CompanyInfo) (*models.VideoAnalysisResponse, error) {
	p.transition(StateValidating)
	if missing := company.MissingFields(); len(missing) > 0 {
		p.logger.Warn("Rejected company profile", "missing", missing)
		return nil, clientInput(ErrMissingFields)
	}

	p.transition(StateDiscovering)
	competitors, err := p.deps.Competitors.FindCompetitors(ctx, company)
	if err != nil {
		return nil, collaboratorFailure("find competitors", err)
	}
	videos, err := p.deps.Videos.SearchVideos(ctx, company.Name, company.AdObjective)
	if err != nil {
		return nil, collaboratorFailure("search videos", err)
	}
	p.logger.Info("Discovery complete", "competitors", len(competitors), "videos", len(videos))

	p.transition(StateIterating)
	acc := newAccumulator()
	for i, video := range videos {
		processed, err := p.processor.Process(ctx, video, company)
		if err != nil {
			if p.skippable(err) {
				p.logger.Warn("Skipping video", "index", i, "videoId", video.ID, "reason", err.Error())
				continue
			}
			return nil, err
		}
		acc.add(processed)
	}

	p.transition(StateRanking)
	topParameters := TopK(acc.ratings, ratingKey, TopParameterCount)
	topImpact := TopK(acc.impact, impactKey, TopParameterCount)

	p.transition(StateSentimentScoring)
	sentiment, err := p.scoreSentiment(ctx, acc.comments.Drain())
	if err != nil {
		return nil, err
	}

	p.transition(StateAssembling)
	return assemble(competitors, acc, topParameters, topImpact, sentiment), nil
}

func (p *Pipeline) skippable(err error) bool {
	switch KindOf(err) {
	case KindCollaboratorUnavailable:
		return true
	case KindCollaboratorFailure:
		return p.opts.IsolateVideoFailures && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	default:
		return false
	}
}

type sentimentOutcome struct {
	result *models.SentimentResult
	err    error
}

// scoreSentiment is the run's only suspension point: the scorer runs on its
// own goroutine while the caller waits for it or for ctx.
func (p *Pipeline) scoreSentiment(ctx context.Context, comments []string) (*models.SentimentResult, error) {
	done := make(chan sentimentOutcome, 1)
	go func() {
		result, err := p.deps.Sentiment.AnalyzeSentiment(ctx, comments)
		done <- sentimentOutcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, asyncFailure("analyze sentiment", out.err)
		}
		if out.result == nil {
			return nil, asyncFailure("analyze sentiment", fmt.Errorf("scorer returned no result for %d comments", len(comments)))
		}
		return out.result, nil
	case <-ctx.Done():
		return nil, asyncFailure("analyze sentiment", ctx.Err())
	}
}
