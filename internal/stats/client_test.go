package stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/demetriusmayo/PathOfSearching/internal/cache"
	"github.com/demetriusmayo/PathOfSearching/internal/model"
)

const listingJSON = `{
	"result": [
		{
			"label": "Explicit",
			"entries": [
				{"id": "explicit.stat_1", "text": "+# to maximum Life"},
				{"id": "explicit.stat_2", "text": "#% increased Attack Speed"}
			]
		},
		{
			"label": "Implicit",
			"entries": [
				{"id": "implicit.stat_3", "text": "+#% to Fire Resistance"}
			]
		},
		{
			"label": "Crafted",
			"entries": [
				{"id": "crafted.stat_4", "text": "#% increased Spell Damage"}
			]
		}
	]
}`

func testConfig(endpoint string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Stats.Endpoint = endpoint
	cfg.Stats.RequestsPerSecond = 1000 // don't slow tests down
	cfg.Stats.Burst = 1000
	cfg.HTTP.Timeout = 5 * time.Second
	return cfg
}

func TestClient_Fetch_FiltersCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingJSON))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	entries, err := client.Fetch(context.Background(), []string{"Explicit"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 explicit entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Category != "Explicit" {
			t.Errorf("Expected only Explicit entries, got %s", e.Category)
		}
	}
}

func TestClient_Fetch_AllowListMultipleCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingJSON))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	entries, err := client.Fetch(context.Background(), []string{"Explicit", "Implicit"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries across Explicit and Implicit, got %d", len(entries))
	}
}

func TestClient_Fetch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	_, err := client.Fetch(context.Background(), []string{"Explicit"})
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500 in error, got %d", fetchErr.StatusCode)
	}
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(testConfig(server.URL), nil)
	_, err := client.Fetch(context.Background(), []string{"Explicit"})
	if err == nil {
		t.Fatal("Expected error for unreachable source")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Expected *FetchError, got %T", err)
	}
}

func TestClient_Fetch_UsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(listingJSON))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), cache.NewMemory(time.Minute, time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := client.Fetch(context.Background(), []string{"Explicit"}); err != nil {
			t.Fatalf("Fetch %d: expected no error, got %v", i, err)
		}
	}

	if hits != 1 {
		t.Errorf("Expected exactly 1 upstream request, got %d", hits)
	}
}

func TestEntry_Phrase(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"+# to maximum Life", "+# to maximum life"},
		{"Adds # to #\nFire Damage", "adds # to # fire damage"},
		{"#%   increased\tAttack Speed", "#% increased attack speed"},
		{"Grants\x0bLevel # Clarity Skill", "grants level # clarity skill"},
	}

	for _, tt := range tests {
		e := Entry{Text: tt.text}
		if got := e.Phrase(); got != tt.want {
			t.Errorf("Phrase(%q): expected %q, got %q", tt.text, tt.want, got)
		}
	}
}
