package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

func ratings(kv ...any) *models.RatingMap {
	m := models.NewOrderedMap[float64]()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(float64))
	}
	return m
}

func TestEngagementRate(t *testing.T) {
	d := &models.VideoDetails{ViewCount: 1000, LikeCount: 50, CommentCount: 10}
	if got := EngagementRate(d); math.Abs(got-0.07) > 1e-9 {
		t.Fatalf("EngagementRate = %v, want 0.07", got)
	}
	if got := EngagementRate(&models.VideoDetails{LikeCount: 5}); got != 0 {
		t.Fatalf("EngagementRate with zero views = %v, want 0", got)
	}
}

func TestReachFactorBounds(t *testing.T) {
	if ReachFactor(0) != 0 {
		t.Fatal("zero views should have zero reach")
	}
	if ReachFactor(100_000_000) != 1 {
		t.Fatal("reach should saturate at 1")
	}
	if r := ReachFactor(1000); r <= 0 || r >= 1 {
		t.Fatalf("ReachFactor(1000) = %v, want within (0,1)", r)
	}
}

func TestCalculateImpactKeepsRatingOrderAndRanksByRating(t *testing.T) {
	d := &models.VideoDetails{ViewCount: 50_000, LikeCount: 2_000, CommentCount: 300}
	impact, err := NewImpactCalculator().CalculateImpact(d, ratings("hook", 4.0, "clarity", 9.0, "cta", 15.0))
	if err != nil {
		t.Fatalf("CalculateImpact: %v", err)
	}

	if got := impact.Keys(); strings.Join(got, ",") != "hook,clarity,cta" {
		t.Fatalf("keys = %v", got)
	}
	hook, _ := impact.Get("hook")
	clarity, _ := impact.Get("clarity")
	cta, _ := impact.Get("cta")
	if !(clarity.OverallImpact > hook.OverallImpact) {
		t.Fatalf("higher rating should have higher impact: %+v vs %+v", clarity, hook)
	}
	if cta.ParameterScore != 10 {
		t.Fatalf("rating not clamped: %+v", cta)
	}
	if cta.OverallImpact > 1 {
		t.Fatalf("overall impact above 1: %+v", cta)
	}
}

func TestCalculateImpactNilDetails(t *testing.T) {
	if _, err := NewImpactCalculator().CalculateImpact(nil, ratings()); err != ErrNilDetails {
		t.Fatalf("err = %v, want ErrNilDetails", err)
	}
}

func TestGenerateReport(t *testing.T) {
	d := &models.VideoDetails{Title: "Summer Promo", ChannelTitle: "Acme", ViewCount: 100, LikeCount: 10, CommentCount: 1}
	impact := models.NewOrderedMap[models.ImpactRecord]()
	impact.Set("hook", models.ImpactRecord{ParameterScore: 3, OverallImpact: 0.2})
	impact.Set("clarity", models.ImpactRecord{ParameterScore: 8, OverallImpact: 0.7})

	report, err := NewReportGenerator().GenerateReport(d, impact)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	for _, want := range []string{"VIDEO: Summer Promo", "CHANNEL: Acme", "STATS: 100 views, 10 likes, 1 comments"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Index(report, "- clarity") > strings.Index(report, "- hook") {
		t.Errorf("parameters not sorted by impact:\n%s", report)
	}
}
