package models

import (
	"strings"
	"time"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type AppConfig struct {
	Port                 string
	YTApiKey             string
	GEMINIApiKey         string
	GEMINIModel          string
	GCPProject           string
	BQDataset            string
	BQCompetitorTable    string
	CompetitorSource     string
	ParameterCatalog     string
	LogFormat            string
	MaxVideos            int
	MaxCommentsPerVideo  int
	CommentChunkSize     int
	GeminiIntervalMillis int
	GeminiMaxRetries     int
	IsolateVideoFailures bool
	CORS                 CORSConfig
}

// CORSConfig mirrors the cross-origin policy the dashboard frontend relies on.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CompanyInfo is the validated analysis request. It is never mutated once built.
type CompanyInfo struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	AdObjective string `json:"ad_objective"`
}

// MissingFields returns the JSON names of required fields that are absent or blank.
func (c CompanyInfo) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"domain", c.Domain},
		{"description", c.Description},
		{"ad_objective", c.AdObjective},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// VideoRecord is a search hit. Only ID and Title are read by the pipeline.
type VideoRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
}

type VideoDetails struct {
	ID            string   `json:"id"`
	ChannelID     string   `json:"channel_id"`
	ChannelTitle  string   `json:"channel_title"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	Duration      string   `json:"duration"`
	CategoryID    string   `json:"category_id"`
	ViewCount     int64    `json:"view_count"`
	LikeCount     int64    `json:"like_count"`
	FavoriteCount int64    `json:"favorite_count"`
	CommentCount  int64    `json:"comment_count"`
}

type Parameter struct {
	Key         string  `json:"key" yaml:"key"`
	Description string  `json:"description" yaml:"description"`
	Weight      float64 `json:"weight" yaml:"weight"`
}

type ParameterSet []Parameter

func (ps ParameterSet) Keys() []string {
	keys := make([]string, len(ps))
	for i, p := range ps {
		keys[i] = p.Key
	}
	return keys
}

type ImpactRecord struct {
	ParameterScore float64 `json:"parameter_score"`
	EngagementRate float64 `json:"engagement_rate"`
	ReachFactor    float64 `json:"reach_factor"`
	OverallImpact  float64 `json:"overall_impact"`
}

type (
	RatingMap       = OrderedMap[float64]
	ImpactMap       = OrderedMap[ImpactRecord]
	SentimentResult = OrderedMap[float64]
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// NewSentimentResult builds a result with the three labels in a fixed order.
func NewSentimentResult(positive, negative, neutral float64) *SentimentResult {
	s := NewOrderedMap[float64]()
	s.Set(SentimentPositive, positive)
	s.Set(SentimentNegative, negative)
	s.Set(SentimentNeutral, neutral)
	return s
}

type VideoAnalysisResult struct {
	VideoID  string     `json:"video_id"`
	Title    string     `json:"title"`
	Metrics  *ImpactMap `json:"metrics"`
	Insights []string   `json:"insights"`
}

type VideoAnalysisResponse struct {
	Competitors       []string              `json:"competitors"`
	VideoAnalysis     []VideoAnalysisResult `json:"video_analysis"`
	TopParameters     []Pair[float64]       `json:"top_parameters"`
	TopImpactMetrics  []Pair[ImpactRecord]  `json:"top_impact_metrics"`
	Insights          []string              `json:"insights"`
	SentimentAnalysis *SentimentResult      `json:"sentiment_analysis"`
	TranscriptLength  int                   `json:"transcript_length"`
}
