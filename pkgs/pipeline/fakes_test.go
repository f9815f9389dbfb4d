package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

type rating struct {
	key   string
	value float64
}

type fakeCompetitors struct {
	names []string
	err   error
	calls int
}

func (f *fakeCompetitors) FindCompetitors(ctx context.Context, company models.CompanyInfo) ([]string, error) {
	f.calls++
	return f.names, f.err
}

type fakeVideos struct {
	search         []models.VideoRecord
	searchErr      error
	details        map[string]*models.VideoDetails
	detailsErr     map[string]error
	transcripts    map[string]string
	transcriptErrs map[string]error
	comments       map[string][]string
	calls          []string
}

func (f *fakeVideos) SearchVideos(ctx context.Context, name, objective string) ([]models.VideoRecord, error) {
	f.calls = append(f.calls, "search:"+name+"|"+objective)
	return f.search, f.searchErr
}

func (f *fakeVideos) GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error) {
	f.calls = append(f.calls, "details:"+videoID)
	if err := f.detailsErr[videoID]; err != nil {
		return nil, err
	}
	return f.details[videoID], nil
}

func (f *fakeVideos) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	f.calls = append(f.calls, "transcript:"+videoID)
	if err := f.transcriptErrs[videoID]; err != nil {
		return "", err
	}
	return f.transcripts[videoID], nil
}

func (f *fakeVideos) FetchComments(ctx context.Context, videoID string) ([]string, error) {
	f.calls = append(f.calls, "comments:"+videoID)
	return f.comments[videoID], nil
}

func (f *fakeVideos) callsFor(videoID string) []string {
	var out []string
	for _, c := range f.calls {
		if strings.HasSuffix(c, ":"+videoID) {
			out = append(out, c)
		}
	}
	return out
}

type fakeParameters struct {
	calls int
}

func (f *fakeParameters) Parameters(ctx context.Context, domain, objective string) (models.ParameterSet, error) {
	f.calls++
	return models.ParameterSet{{Key: "clarity", Weight: 1}, {Key: "hook", Weight: 1}}, nil
}

type fakeRatings struct {
	byVideo map[string][]rating
	err     error
}

func (f *fakeRatings) RateVideo(ctx context.Context, details *models.VideoDetails, params models.ParameterSet) (*models.RatingMap, error) {
	if f.err != nil {
		return nil, f.err
	}
	m := models.NewOrderedMap[float64]()
	for _, r := range f.byVideo[details.ID] {
		m.Set(r.key, r.value)
	}
	return m, nil
}

// fakeImpact derives one impact record per rating, overall impact = rating/10.
type fakeImpact struct{}

func (fakeImpact) CalculateImpact(details *models.VideoDetails, ratings *models.RatingMap) (*models.ImpactMap, error) {
	m := models.NewOrderedMap[models.ImpactRecord]()
	for _, e := range ratings.Entries() {
		m.Set(e.Key, models.ImpactRecord{ParameterScore: e.Value, OverallImpact: e.Value / 10})
	}
	return m, nil
}

type fakeReports struct{}

func (fakeReports) GenerateReport(details *models.VideoDetails, impact *models.ImpactMap) (string, error) {
	return fmt.Sprintf("report:%s:%d", details.ID, impact.Len()), nil
}

type fakeInsights struct {
	err error
}

func (f *fakeInsights) GenerateInsights(ctx context.Context, report string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"insight from " + report}, nil
}

type fakeSentiment struct {
	calls    int
	received []string
	err      error
	block    chan struct{}
}

func (f *fakeSentiment) AnalyzeSentiment(ctx context.Context, comments []string) (*models.SentimentResult, error) {
	f.calls++
	f.received = append([]string(nil), comments...)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return models.NewSentimentResult(float64(len(comments)), 0, 0), nil
}

type fixture struct {
	competitors *fakeCompetitors
	videos      *fakeVideos
	parameters  *fakeParameters
	ratings     *fakeRatings
	insights    *fakeInsights
	sentiment   *fakeSentiment
}

func newFixture() *fixture {
	return &fixture{
		competitors: &fakeCompetitors{names: []string{"Rival A", "Rival B"}},
		videos: &fakeVideos{
			details:        map[string]*models.VideoDetails{},
			detailsErr:     map[string]error{},
			transcripts:    map[string]string{},
			transcriptErrs: map[string]error{},
			comments:       map[string][]string{},
		},
		parameters: &fakeParameters{},
		ratings:    &fakeRatings{byVideo: map[string][]rating{}},
		insights:   &fakeInsights{},
		sentiment:  &fakeSentiment{},
	}
}

// addVideo registers a discoverable video with details, transcript, comments and ratings.
func (f *fixture) addVideo(id, transcript string, comments []string, ratings ...rating) {
	f.videos.search = append(f.videos.search, models.VideoRecord{ID: id, Title: "search " + id})
	f.videos.details[id] = &models.VideoDetails{ID: id, Title: "Title " + id}
	f.videos.transcripts[id] = transcript
	f.videos.comments[id] = comments
	f.ratings.byVideo[id] = ratings
}

// addMissingVideo registers a discoverable video whose details are absent.
func (f *fixture) addMissingVideo(id string) {
	f.videos.search = append(f.videos.search, models.VideoRecord{ID: id, Title: "search " + id})
	f.videos.transcripts[id] = "never read"
	f.videos.comments[id] = []string{"never read"}
	f.ratings.byVideo[id] = []rating{{"ghost", 10}}
}

func (f *fixture) collaborators() Collaborators {
	return Collaborators{
		Competitors: f.competitors,
		Videos:      f.videos,
		Parameters:  f.parameters,
		Ratings:     f.ratings,
		Impact:      fakeImpact{},
		Reports:     fakeReports{},
		Insights:    f.insights,
		Sentiment:   f.sentiment,
	}
}

func acme() models.CompanyInfo {
	return models.CompanyInfo{Name: "Acme", Domain: "fitness", Description: "Home gym gear", AdObjective: "awareness"}
}
