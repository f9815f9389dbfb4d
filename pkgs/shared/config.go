package shared

import (
	"errors"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

const (
	CompetitorSourceGemini   = "gemini"
	CompetitorSourceBigQuery = "bigquery"
)

var (
	ErrMissingYouTubeKey = errors.New("YOUTUBE_API_KEY must be set")
	ErrMissingGeminiKey  = errors.New("GEMINI_API_KEY must be set")
	ErrMissingGCPProject = errors.New("GCP_PROJECT must be set when COMPETITOR_SOURCE=bigquery")
)

// LoadConfig reads the service configuration from the environment.
func LoadConfig() models.AppConfig {
	return models.AppConfig{
		Port:                 GetEnvString("PORT", "8080"),
		YTApiKey:             GetEnvString("YOUTUBE_API_KEY", ""),
		GEMINIApiKey:         GetEnvString("GEMINI_API_KEY", ""),
		GEMINIModel:          GetEnvString("GEMINI_MODEL", "gemini-1.5-flash"),
		GCPProject:           GetEnvString("GCP_PROJECT", ""),
		BQDataset:            GetEnvString("BQ_DATASET", "ad_intel"),
		BQCompetitorTable:    GetEnvString("BQ_COMPETITOR_TABLE", "companies"),
		CompetitorSource:     GetEnvString("COMPETITOR_SOURCE", CompetitorSourceGemini),
		ParameterCatalog:     GetEnvString("PARAMETER_CATALOG", ""),
		LogFormat:            GetEnvString("LOG_FORMAT", "json"),
		MaxVideos:            GetEnvInt("MAX_VIDEOS", 5),
		MaxCommentsPerVideo:  GetEnvInt("MAX_COMMENTS_PER_VIDEO", 200),
		CommentChunkSize:     GetEnvInt("COMMENT_CHUNK_SIZE", 100),
		GeminiIntervalMillis: GetEnvInt("GEMINI_RPS_INTERVAL_MS", 600),
		GeminiMaxRetries:     GetEnvInt("GEMINI_MAX_RETRIES", 3),
		IsolateVideoFailures: GetEnvBool("ISOLATE_VIDEO_FAILURES", false),
		CORS: models.CORSConfig{
			AllowedOrigins:   GetEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "https://supermind-art.vercel.app"}),
			AllowedMethods:   GetEnvList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders:   GetEnvList("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
			AllowCredentials: GetEnvBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           GetEnvInt("CORS_MAX_AGE", 3600),
		},
	}
}

// ValidateConfig reports settings the service cannot start without.
func ValidateConfig(cfg models.AppConfig) error {
	var errs []error
	if cfg.YTApiKey == "" {
		errs = append(errs, ErrMissingYouTubeKey)
	}
	if cfg.GEMINIApiKey == "" {
		errs = append(errs, ErrMissingGeminiKey)
	}
	if cfg.CompetitorSource == CompetitorSourceBigQuery && cfg.GCPProject == "" {
		errs = append(errs, ErrMissingGCPProject)
	}
	return errors.Join(errs...)
}
