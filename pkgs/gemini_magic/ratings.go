package gemini_magic

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

const maxDescriptionRunes = 1500

type ratingReply struct {
	Ratings map[string]float64 `json:"ratings"`
}

type videoForPrompt struct {
	Title        string   `json:"title"`
	Channel      string   `json:"channel"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags,omitempty"`
	Duration     string   `json:"duration"`
	ViewCount    int64    `json:"view_count"`
	LikeCount    int64    `json:"like_count"`
	CommentCount int64    `json:"comment_count"`
}

// RateVideo scores the video 0-10 on every parameter, in parameter order.
// Parameters the model leaves out score 0; keys it invents are dropped.
func (a *Analyzer) RateVideo(ctx context.Context, details *models.VideoDetails, params models.ParameterSet) (*models.RatingMap, error) {
	ratings := models.NewOrderedMap[float64]()
	if len(params) == 0 {
		return ratings, nil
	}

	videoJSON, err := json.Marshal(videoForPrompt{
		Title:        details.Title,
		Channel:      details.ChannelTitle,
		Description:  truncateRunes(details.Description, maxDescriptionRunes),
		Tags:         details.Tags,
		Duration:     details.Duration,
		ViewCount:    details.ViewCount,
		LikeCount:    details.LikeCount,
		CommentCount: details.CommentCount,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal video details: %w", err)
	}

	var lines []string
	for _, p := range params {
		lines = append(lines, fmt.Sprintf("- %s: %s", p.Key, p.Description))
	}

	var reply ratingReply
	prompt := fmt.Sprintf(ratingPrompt, videoJSON, strings.Join(lines, "\n"))
	if err := a.generateJSON(ctx, "rate video "+details.ID, prompt, &reply); err != nil {
		return nil, err
	}

	for _, p := range params {
		ratings.Set(p.Key, math.Max(0, math.Min(10, reply.Ratings[p.Key])))
	}
	return ratings, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
