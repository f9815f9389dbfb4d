// Package api_handler exposes the analysis pipeline over HTTP.
package api_handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
	"github.com/DhruvPatel284/supermind-ART/pkgs/pipeline"
	"github.com/DhruvPatel284/supermind-ART/pkgs/shared"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

const TrackingHeader = "X-Tracking-Id"

// maxBodyBytes bounds the /analyze request body.
const maxBodyBytes = 1 << 20

type ctxKey struct{}

type server struct {
	deps   pipeline.Collaborators
	opts   pipeline.Options
	logger *slog.Logger
}

// NewServer wires the routes once from cfg. Handlers build a fresh pipeline
// per request from deps and never read global configuration.
func NewServer(cfg models.AppConfig, deps pipeline.Collaborators, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = shared.Logger
	}
	s := &server{
		deps:   deps,
		opts:   pipeline.Options{IsolateVideoFailures: cfg.IsolateVideoFailures},
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", info)
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("POST /analyze", s.analyze)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	return c.Handler(s.withTracking(s.withRecovery(mux)))
}

// withTracking assigns every request a tracking ID, reusing the caller's when
// one is supplied, and echoes it in the response header.
func (s *server) withTracking(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trackingID := r.Header.Get(TrackingHeader)
		if trackingID == "" {
			trackingID = r.URL.Query().Get("trackingId")
		}
		if trackingID == "" {
			trackingID = uuid.New().String()
		}
		w.Header().Set(TrackingHeader, trackingID)
		s.logger.Info("Received request", "method", r.Method, "url", r.URL.String(), "trackingId", trackingID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, trackingID)))
	})
}

// withRecovery turns a panic in a handler or collaborator into a 500 JSON
// error instead of a dropped connection.
func (s *server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			trackingID := trackingIDFrom(r.Context())
			s.logger.Error("Recovered from panic", "panic", rec, "stack", string(debug.Stack()), "trackingId", trackingID)
			shared.JSONErrorResponse(w, trackingID, http.StatusInternalServerError, fmt.Sprint(rec))
		}()
		next.ServeHTTP(w, r)
	})
}

func trackingIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	shared.JSONResponse(w, trackingIDFrom(r.Context()), http.StatusOK, models.HealthResponse{Status: "healthy"})
}

func (s *server) analyze(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	ctx := r.Context()
	trackingID := trackingIDFrom(ctx)
	logger := s.logger.With("trackingId", trackingID)

	var company models.CompanyInfo
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&company); err != nil {
		logger.Warn("Could not decode analysis request", "error", err)
		shared.JSONErrorResponse(w, trackingID, http.StatusBadRequest, pipeline.ErrMissingFields.Error())
		return
	}

	p := pipeline.New(s.deps, s.opts, logger)
	response, err := p.Run(ctx, company)
	if err != nil {
		if pipeline.KindOf(err) == pipeline.KindClientInput {
			shared.JSONErrorResponse(w, trackingID, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Analysis failed", "error", err, "kind", pipeline.KindOf(err).String())
		shared.JSONErrorResponse(w, trackingID, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("Analysis complete",
		"company", company.Name,
		"videos", len(response.VideoAnalysis),
		"processingTime", time.Since(startTime).String(),
	)
	shared.JSONResponse(w, trackingID, http.StatusOK, response)
}

func info(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Competitive Video Ad Analysis Service Endpoints:")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "1. POST /analyze")
	fmt.Fprintln(w, `   - Body: {"name": "...", "domain": "...", "description": "...", "ad_objective": "..."}`)
	fmt.Fprintln(w, "   - Finds competitors and relevant YouTube videos, rates each video against the ad parameters")
	fmt.Fprintln(w, "     for the domain and objective, and returns the top parameters, top impact metrics,")
	fmt.Fprintln(w, "     per-video insights and the overall comment sentiment.")
	fmt.Fprintln(w, "   - Send an 'X-Tracking-Id' header to correlate logs; one is generated otherwise.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "2. GET /health")
	fmt.Fprintln(w, "   - Liveness probe.")
}
