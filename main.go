package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/DhruvPatel284/supermind-ART/pkgs/api_handler"
	"github.com/DhruvPatel284/supermind-ART/pkgs/bq_competitors"
	"github.com/DhruvPatel284/supermind-ART/pkgs/catalog"
	"github.com/DhruvPatel284/supermind-ART/pkgs/gemini_magic"
	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
	"github.com/DhruvPatel284/supermind-ART/pkgs/pipeline"
	"github.com/DhruvPatel284/supermind-ART/pkgs/scoring"
	"github.com/DhruvPatel284/supermind-ART/pkgs/shared"
	"github.com/DhruvPatel284/supermind-ART/pkgs/yt_video"
)

func init() {
	log.SetFlags(0)
}

func main() {
	cfg := shared.LoadConfig()
	shared.SetLogger(shared.NewLogger(os.Stdout, cfg.LogFormat))
	if err := shared.ValidateConfig(cfg); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	deps, clients, err := buildCollaborators(ctx, cfg)
	if err != nil {
		shared.Logger.Error("Failed to initialise collaborators", "error", err)
		os.Exit(1)
	}

	shared.Logger.Info("Starting server on http://localhost:"+cfg.Port,
		"competitorSource", cfg.CompetitorSource,
		"isolateVideoFailures", cfg.IsolateVideoFailures,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api_handler.NewServer(cfg, deps, shared.Logger),
		WriteTimeout: 35 * time.Minute,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	err = server.ListenAndServe()
	clients.closeAll()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		shared.Logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// closers releases long-lived clients, most recently opened first.
type closers []func() error

func (c closers) closeAll() {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil {
			shared.Logger.Warn("Error closing client", "error", err)
		}
	}
}

// buildCollaborators creates every long-lived client once. On failure the
// clients opened so far are closed before returning.
func buildCollaborators(ctx context.Context, cfg models.AppConfig) (deps pipeline.Collaborators, clients closers, err error) {
	defer func() {
		if err != nil {
			clients.closeAll()
			clients = nil
		}
	}()

	gen, err := gemini_magic.NewGenaiGenerator(ctx, cfg.GEMINIApiKey, cfg.GEMINIModel)
	if err != nil {
		return deps, clients, err
	}
	clients = append(clients, gen.Close)

	analyzer := gemini_magic.NewAnalyzer(gen, gemini_magic.Options{
		Interval:   time.Duration(cfg.GeminiIntervalMillis) * time.Millisecond,
		MaxRetries: cfg.GeminiMaxRetries,
		RetryDelay: 2 * time.Second,
		ChunkSize:  cfg.CommentChunkSize,
	}, shared.Logger)

	videos, err := yt_video.NewClient(ctx, yt_video.Config{
		APIKey:      cfg.YTApiKey,
		MaxVideos:   cfg.MaxVideos,
		MaxComments: cfg.MaxCommentsPerVideo,
	}, shared.Logger)
	if err != nil {
		return deps, clients, err
	}

	params, err := catalog.Load(ctx, cfg.ParameterCatalog)
	if err != nil {
		return deps, clients, err
	}

	var competitors pipeline.CompetitorFinder = analyzer
	if cfg.CompetitorSource == shared.CompetitorSourceBigQuery {
		var bq *bigquery.Client
		bq, err = bigquery.NewClient(ctx, cfg.GCPProject)
		if err != nil {
			return deps, clients, err
		}
		clients = append(clients, bq.Close)
		competitors = bq_competitors.NewDirectory(bq, cfg.GCPProject, cfg.BQDataset, cfg.BQCompetitorTable, shared.Logger)
	}

	deps = pipeline.Collaborators{
		Competitors: competitors,
		Videos:      videos,
		Parameters:  params,
		Ratings:     analyzer,
		Impact:      scoring.NewImpactCalculator(),
		Reports:     scoring.NewReportGenerator(),
		Insights:    analyzer,
		Sentiment:   analyzer,
	}
	return deps, clients, nil
}
