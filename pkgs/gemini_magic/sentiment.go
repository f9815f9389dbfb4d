package gemini_magic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

type sentimentCounts struct {
	Positive int `json:"positive_comments"`
	Negative int `json:"negative_comments"`
	Neutral  int `json:"neutral_comments"`
}

func (c sentimentCounts) total() int {
	return c.Positive + c.Negative + c.Neutral
}

func chunkComments(comments []string, chunkSize int) [][]string {
	var chunks [][]string
	if chunkSize <= 0 {
		return chunks
	}
	for i := 0; i < len(comments); i += chunkSize {
		end := i + chunkSize
		if end > len(comments) {
			end = len(comments)
		}
		chunks = append(chunks, comments[i:end])
	}
	return chunks
}

// AnalyzeSentiment classifies the comments in rate-limited parallel chunks and
// returns the share of positive, negative and neutral comments.
// An empty input yields all zeros without calling the model.
func (a *Analyzer) AnalyzeSentiment(ctx context.Context, comments []string) (*models.SentimentResult, error) {
	var kept []string
	for _, c := range comments {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return models.NewSentimentResult(0, 0, 0), nil
	}

	chunks := chunkComments(kept, a.chunkSize)
	a.logger.Info("Scoring comment sentiment", "comments", len(kept), "chunks", len(chunks), "chunkSize", a.chunkSize)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		totals sentimentCounts
		errs   []error
	)
	for i, chunk := range chunks {
		wg.Add(1)
		go func(chunkIndex int, commentChunk []string) {
			defer wg.Done()

			var lines []string
			for j, c := range commentChunk {
				lines = append(lines, fmt.Sprintf("%d. %s", j+1, c))
			}
			prompt := fmt.Sprintf(sentimentPrompt, strings.Join(lines, "\n"), len(commentChunk))

			var counts sentimentCounts
			task := fmt.Sprintf("sentiment chunk %d/%d", chunkIndex+1, len(chunks))
			err := a.generateJSON(ctx, task, prompt, &counts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("chunk %d: %w", chunkIndex, err))
				return
			}
			if counts.Positive < 0 || counts.Negative < 0 || counts.Neutral < 0 {
				errs = append(errs, fmt.Errorf("chunk %d: negative sentiment count", chunkIndex))
				return
			}
			totals.Positive += counts.Positive
			totals.Negative += counts.Negative
			totals.Neutral += counts.Neutral
		}(i, chunk)
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, fmt.Errorf("one or more comment chunks failed sentiment analysis: %w", errors.Join(errs...))
	}
	return normalise(totals), nil
}

func normalise(c sentimentCounts) *models.SentimentResult {
	total := c.total()
	if total == 0 {
		return models.NewSentimentResult(0, 0, 0)
	}
	share := func(n int) float64 {
		return math.Round(float64(n)/float64(total)*10000) / 10000
	}
	return models.NewSentimentResult(share(c.Positive), share(c.Negative), share(c.Neutral))
}
