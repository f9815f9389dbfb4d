package yt_video

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.Handler, cfg Config) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.APIKey = "test-key"
	cfg.HTTPClient = srv.Client()
	if cfg.TranscriptURL == "" {
		cfg.TranscriptURL = srv.URL + "/api/timedtext"
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewClient(context.Background(), cfg, logger,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	io.WriteString(w, body)
}

func TestSearchVideos(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/search", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		if r.URL.Query().Get("type") != "video" {
			t.Errorf("type = %q", r.URL.Query().Get("type"))
		}
		writeJSON(w, http.StatusOK, `{"items": [
			{"id": {"videoId": "v1"}, "snippet": {"title": "Run &amp; Win", "channelTitle": "Nike", "publishedAt": "2024-01-02T03:04:05Z"}},
			{"id": {"channelId": "c1"}, "snippet": {"title": "a channel"}},
			{"id": {"videoId": "v2"}, "snippet": {"title": "Second"}}
		]}`)
	})

	c := newTestClient(t, mux, Config{MaxVideos: 5})
	videos, err := c.SearchVideos(context.Background(), "Nike", "awareness")
	if err != nil {
		t.Fatalf("SearchVideos() error = %v", err)
	}
	if gotQuery != "Nike awareness" {
		t.Errorf("q = %q", gotQuery)
	}
	if len(videos) != 2 || videos[0].ID != "v1" || videos[1].ID != "v2" {
		t.Fatalf("videos = %+v", videos)
	}
	if videos[0].Title != "Run & Win" || videos[0].PublishedAt.Year() != 2024 {
		t.Errorf("first video = %+v", videos[0])
	}
}

func TestGetVideoDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/videos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "missing" {
			writeJSON(w, http.StatusOK, `{"items": []}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"items": [{
			"id": "v1",
			"snippet": {"title": "Run", "channelTitle": "Nike", "description": "desc", "tags": ["run"]},
			"contentDetails": {"duration": "PT30S"},
			"statistics": {"viewCount": "1000", "likeCount": "50", "commentCount": "10"}
		}]}`)
	})
	c := newTestClient(t, mux, Config{})

	details, err := c.GetVideoDetails(context.Background(), "v1")
	if err != nil {
		t.Fatalf("GetVideoDetails() error = %v", err)
	}
	if details.Title != "Run" || details.Duration != "PT30S" || details.ViewCount != 1000 || details.LikeCount != 50 || details.CommentCount != 10 {
		t.Errorf("details = %+v", details)
	}

	missing, err := c.GetVideoDetails(context.Background(), "missing")
	if err != nil || missing != nil {
		t.Errorf("GetVideoDetails(missing) = %+v, %v; want nil, nil", missing, err)
	}
}

func TestFetchCommentsPagesAndCaps(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/commentThreads", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pageToken") {
		case "":
			writeJSON(w, http.StatusOK, `{"nextPageToken": "p2", "items": [
				{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "first"}}},
				 "replies": {"comments": [{"snippet": {"textDisplay": "reply"}}]}}
			]}`)
		case "p2":
			writeJSON(w, http.StatusOK, `{"items": [
				{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "second"}}}},
				{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "third"}}}}
			]}`)
		}
	})
	c := newTestClient(t, mux, Config{MaxComments: 3})

	comments, err := c.FetchComments(context.Background(), "v1")
	if err != nil {
		t.Fatalf("FetchComments() error = %v", err)
	}
	if strings.Join(comments, ",") != "first,reply,second" {
		t.Errorf("comments = %v", comments)
	}
}

func TestFetchCommentsSkipsItemsWithoutSnippet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/commentThreads", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"items": [
			{"snippet": {"topLevelComment": {"id": "c1"}}},
			{"id": "t2"},
			{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "kept"}}},
			 "replies": {"comments": [{"id": "r1"}, {"snippet": {"textDisplay": "kept reply"}}]}}
		]}`)
	})
	c := newTestClient(t, mux, Config{})

	comments, err := c.FetchComments(context.Background(), "v1")
	if err != nil {
		t.Fatalf("FetchComments() error = %v", err)
	}
	if strings.Join(comments, ",") != "kept,kept reply" {
		t.Errorf("comments = %v", comments)
	}
}

func TestFetchCommentsErrors(t *testing.T) {
	apiError := func(reason string) string {
		return fmt.Sprintf(`{"error": {"code": 403, "message": %q, "errors": [{"reason": %q, "message": "x"}]}}`, reason, reason)
	}
	tests := []struct {
		name    string
		reason  string
		want    string
		wantErr bool
	}{
		{"disabled", "commentsDisabled", "", false},
		{"quota keeps fetched", "quotaExceeded", "first", false},
		{"forbidden", "forbidden", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/youtube/v3/commentThreads", func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("pageToken") == "" && tt.reason == "quotaExceeded" {
					writeJSON(w, http.StatusOK, `{"nextPageToken": "p2", "items": [{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "first"}}}}]}`)
					return
				}
				writeJSON(w, http.StatusForbidden, apiError(tt.reason))
			})
			c := newTestClient(t, mux, Config{})

			comments, err := c.FetchComments(context.Background(), "v1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("FetchComments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && strings.Join(comments, ",") != tt.want {
				t.Errorf("comments = %v, want %q", comments, tt.want)
			}
		})
	}
}

func TestFetchTranscript(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lang") != "en" {
			t.Errorf("lang = %q", r.URL.Query().Get("lang"))
		}
		switch r.URL.Query().Get("v") {
		case "v1":
			io.WriteString(w, `<?xml version="1.0" encoding="utf-8" ?><transcript>`+
				`<text start="0" dur="1.5">Hello   there</text>`+
				`<text start="1.5" dur="2">it&amp;#39;s time</text>`+
				`<text start="3.5" dur="1"></text>`+
				`</transcript>`)
		case "nocaptions":
			w.WriteHeader(http.StatusOK)
		case "gone":
			http.NotFound(w, r)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	})
	c := newTestClient(t, mux, Config{})

	got, err := c.FetchTranscript(context.Background(), "v1")
	if err != nil {
		t.Fatalf("FetchTranscript() error = %v", err)
	}
	if got != "Hello there it's time" {
		t.Errorf("transcript = %q", got)
	}

	for _, id := range []string{"nocaptions", "gone"} {
		if got, err := c.FetchTranscript(context.Background(), id); err != nil || got != "" {
			t.Errorf("FetchTranscript(%s) = %q, %v", id, got, err)
		}
	}

	if _, err := c.FetchTranscript(context.Background(), "broken"); err == nil {
		t.Error("expected error for server failure")
	}
}
