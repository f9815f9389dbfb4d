// Package yt_video reads public YouTube data: search results, video details,
// comment threads and English captions.
package yt_video

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
	"github.com/PuerkitoBio/goquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const DefaultTranscriptURL = "https://www.youtube.com/api/timedtext"

type Config struct {
	APIKey      string
	MaxVideos   int
	MaxComments int
	// TranscriptURL is the timedtext endpoint; empty means DefaultTranscriptURL.
	TranscriptURL string
	HTTPClient    *http.Client
}

// Client implements the pipeline's VideoSource on top of the YouTube Data API.
type Client struct {
	service       *youtube.Service
	httpClient    *http.Client
	transcriptURL string
	maxVideos     int
	maxComments   int
	logger        *slog.Logger
}

// NewClient builds the YouTube service once. Extra options are appended after
// the API key, so tests can point the client at a fake endpoint.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	service, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("youtube.NewService: %w", err)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.TranscriptURL == "" {
		cfg.TranscriptURL = DefaultTranscriptURL
	}
	if cfg.MaxVideos <= 0 {
		cfg.MaxVideos = 5
	}
	if cfg.MaxComments <= 0 {
		cfg.MaxComments = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		service:       service,
		httpClient:    cfg.HTTPClient,
		transcriptURL: cfg.TranscriptURL,
		maxVideos:     cfg.MaxVideos,
		maxComments:   cfg.MaxComments,
		logger:        logger,
	}, nil
}

// SearchVideos finds videos matching "<name> <objective>".
func (c *Client) SearchVideos(ctx context.Context, name, objective string) ([]models.VideoRecord, error) {
	query := strings.TrimSpace(name + " " + objective)
	response, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(c.maxVideos)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error searching videos for %q: %w", query, err)
	}

	videos := []models.VideoRecord{}
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		// An unparseable timestamp leaves PublishedAt zero; nothing downstream reads it.
		published, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		videos = append(videos, models.VideoRecord{
			ID:           item.Id.VideoId,
			Title:        html.UnescapeString(item.Snippet.Title),
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  published,
		})
		if len(videos) == c.maxVideos {
			break
		}
	}
	c.logger.Info("Searched videos", "query", query, "count", len(videos))
	return videos, nil
}

// GetVideoDetails returns (nil, nil) when YouTube has no such video.
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error) {
	response, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching video details: %w", err)
	}
	if len(response.Items) == 0 {
		c.logger.Info("Video not found for videoId", "videoId", videoID)
		return nil, nil
	}

	video := response.Items[0]
	details := &models.VideoDetails{ID: video.Id, Tags: []string{}}
	if video.Snippet != nil {
		details.ChannelID = video.Snippet.ChannelId
		details.ChannelTitle = video.Snippet.ChannelTitle
		details.Title = video.Snippet.Title
		details.Description = video.Snippet.Description
		details.CategoryID = video.Snippet.CategoryId
		if video.Snippet.Tags != nil {
			details.Tags = video.Snippet.Tags
		}
	}
	if video.ContentDetails != nil {
		details.Duration = video.ContentDetails.Duration
	}
	if video.Statistics != nil {
		details.ViewCount = int64(video.Statistics.ViewCount)
		details.LikeCount = int64(video.Statistics.LikeCount)
		details.FavoriteCount = int64(video.Statistics.FavoriteCount)
		details.CommentCount = int64(video.Statistics.CommentCount)
	}
	return details, nil
}

// FetchComments returns up to MaxComments plain-text comments, replies
// included, ordered by relevance. Disabled comments yield an empty list, and
// an exhausted quota keeps whatever was already fetched.
func (c *Client) FetchComments(ctx context.Context, videoID string) ([]string, error) {
	comments := []string{}
	nextPageToken := ""

FetchCommentsLoop:
	for {
		call := c.service.CommentThreads.List([]string{"snippet", "replies"}).
			VideoId(videoID).
			TextFormat("plainText").
			MaxResults(100).
			Order("relevance")

		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		response, err := call.Context(ctx).Do()
		if err != nil {
			switch {
			case hasReason(err, "quotaExceeded"):
				c.logger.Warn("YouTube API quota exceeded while fetching comments. Proceeding with fetched comments.", "videoId", videoID, "count", len(comments))
				break FetchCommentsLoop
			case hasReason(err, "commentsDisabled"):
				c.logger.Info("Comments are disabled", "videoId", videoID)
				return []string{}, nil
			}
			return nil, fmt.Errorf("error fetching comments: %w", err)
		}

		for _, item := range response.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			comments = append(comments, item.Snippet.TopLevelComment.Snippet.TextDisplay)
			if len(comments) >= c.maxComments {
				break FetchCommentsLoop
			}

			if item.Replies != nil {
				for _, reply := range item.Replies.Comments {
					if reply == nil || reply.Snippet == nil {
						continue
					}
					comments = append(comments, reply.Snippet.TextDisplay)
					if len(comments) >= c.maxComments {
						break FetchCommentsLoop
					}
				}
			}
		}

		nextPageToken = response.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	c.logger.Info("Successfully fetched comments", "count", len(comments), "videoId", videoID)
	return comments, nil
}

func hasReason(err error, reason string) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		for _, item := range gerr.Errors {
			if item.Reason == reason {
				return true
			}
		}
	}
	return strings.Contains(err.Error(), reason)
}

// FetchTranscript returns the English caption text joined by spaces, or ""
// when the video has no captions.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	u, err := url.Parse(c.transcriptURL)
	if err != nil {
		return "", fmt.Errorf("invalid transcript url: %w", err)
	}
	q := u.Query()
	q.Set("lang", "en")
	q.Set("v", videoID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("error creating transcript request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error fetching transcript: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error parsing transcript: %w", err)
	}

	var parts []string
	doc.Find("text").Each(func(_ int, s *goquery.Selection) {
		// Caption text arrives double-escaped; goquery undoes the first layer.
		line := strings.Join(strings.Fields(html.UnescapeString(s.Text())), " ")
		if line != "" {
			parts = append(parts, line)
		}
	})
	return strings.Join(parts, " "), nil
}
