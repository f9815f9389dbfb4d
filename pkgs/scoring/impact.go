// Package scoring turns parameter ratings and engagement statistics into
// impact metrics and a plain-text report.
package scoring

import (
	"errors"
	"math"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

const (
	maxRating = 10.0

	// Engagement weights follow the usual like < comment ordering.
	likeWeight    = 1.0
	commentWeight = 2.0

	// A video at reachCeilingViews views gets the full reach factor.
	reachCeilingViews = 10_000_000

	ratingShare     = 0.5
	engagementShare = 0.3
	reachShare      = 0.2

	// engagementSaturation is the engagement rate treated as perfect.
	engagementSaturation = 0.1
)

var ErrNilDetails = errors.New("scoring: video details are nil")

// ImpactCalculator scores every rated parameter by combining the rating with
// the video's engagement and reach.
type ImpactCalculator struct{}

func NewImpactCalculator() *ImpactCalculator {
	return &ImpactCalculator{}
}

func (c *ImpactCalculator) CalculateImpact(details *models.VideoDetails, ratings *models.RatingMap) (*models.ImpactMap, error) {
	if details == nil {
		return nil, ErrNilDetails
	}

	engagement := EngagementRate(details)
	reach := ReachFactor(details.ViewCount)
	engagementNorm := math.Min(engagement/engagementSaturation, 1)

	out := models.NewOrderedMap[models.ImpactRecord]()
	for _, e := range ratings.Entries() {
		score := clamp(e.Value, 0, maxRating)
		overall := (score / maxRating) * (ratingShare + engagementShare*engagementNorm + reachShare*reach)
		out.Set(e.Key, models.ImpactRecord{
			ParameterScore: score,
			EngagementRate: round(engagement, 6),
			ReachFactor:    round(reach, 4),
			OverallImpact:  round(overall, 4),
		})
	}
	return out, nil
}

// EngagementRate is weighted interactions per view.
func EngagementRate(d *models.VideoDetails) float64 {
	if d.ViewCount <= 0 {
		return 0
	}
	interactions := likeWeight*float64(d.LikeCount) + commentWeight*float64(d.CommentCount)
	return interactions / float64(d.ViewCount)
}

// ReachFactor maps views onto [0,1] on a log scale.
func ReachFactor(views int64) float64 {
	if views <= 0 {
		return 0
	}
	return math.Min(math.Log10(float64(views)+1)/math.Log10(reachCeilingViews), 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
