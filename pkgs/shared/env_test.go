package shared

import (
	"errors"
	"reflect"
	"testing"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_OK", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")

	if got := GetEnvInt("TEST_INT_OK", 7); got != 42 {
		t.Fatalf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Fatalf("GetEnvInt with invalid value = %d, want fallback 7", got)
	}
	if got := GetEnvInt("TEST_INT_UNSET", 7); got != 7 {
		t.Fatalf("GetEnvInt unset = %d, want fallback 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_OK", "true")
	t.Setenv("TEST_BOOL_BAD", "maybe")

	if !GetEnvBool("TEST_BOOL_OK", false) {
		t.Fatal("GetEnvBool = false, want true")
	}
	if GetEnvBool("TEST_BOOL_BAD", false) {
		t.Fatal("GetEnvBool with invalid value should fall back to false")
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("TEST_LIST", " a, ,b ,c")
	t.Setenv("TEST_LIST_BLANK", " , ")

	if got, want := GetEnvList("TEST_LIST", nil), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("GetEnvList = %v, want %v", got, want)
	}
	fallback := []string{"x"}
	if got := GetEnvList("TEST_LIST_BLANK", fallback); !reflect.DeepEqual(got, fallback) {
		t.Fatalf("GetEnvList blank = %v, want fallback %v", got, fallback)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "yt")
	t.Setenv("GEMINI_API_KEY", "gm")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com")

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CompetitorSource != CompetitorSourceGemini {
		t.Errorf("CompetitorSource = %q, want %q", cfg.CompetitorSource, CompetitorSourceGemini)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://example.com"}) {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.MaxAge != 3600 || !cfg.CORS.AllowCredentials {
		t.Errorf("unexpected CORS defaults: %+v", cfg.CORS)
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfigMissingKeys(t *testing.T) {
	cfg := LoadConfig()
	cfg.YTApiKey = ""
	cfg.GEMINIApiKey = ""
	cfg.CompetitorSource = CompetitorSourceBigQuery
	cfg.GCPProject = ""

	err := ValidateConfig(cfg)
	if err == nil {
		t.Fatal("expected error for missing keys")
	}
	for _, want := range []error{ErrMissingYouTubeKey, ErrMissingGeminiKey, ErrMissingGCPProject} {
		if !errors.Is(err, want) {
			t.Errorf("ValidateConfig error %v does not wrap %v", err, want)
		}
	}
}
