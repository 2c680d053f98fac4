// Copyright Tzion0, 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

// withServer points customSearchBase at a test server for the duration of the test.
func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	orig := customSearchBase
	customSearchBase = srv.URL
	t.Cleanup(func() {
		customSearchBase = orig
		srv.Close()
	})
}

// itemsPage builds a response body with n items titled after the start offset.
func itemsPage(start, n int) string {
	body := `{"items":[`
	for i := 0; i < n; i++ {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"title":"result %d","link":"https://example.com/%d"}`, start+i, start+i)
	}
	return body + `]}`
}

func newClient() *Client {
	return &Client{
		APIKey:   "test-key",
		EngineID: "test-cx",
		PageSize: 10,
		Logger:   zerolog.Nop(),
	}
}

func TestSearchPagesThroughOffsets(t *testing.T) {
	var starts []string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		starts = append(starts, r.URL.Query().Get("start"))
		w.Write([]byte(itemsPage(1, 10)))
	})

	got := newClient().Search(context.Background(), "query", 25)

	want := []string{"1", "11", "21"}
	if !reflect.DeepEqual(starts, want) {
		t.Errorf("start offsets = %v, want %v", starts, want)
	}
	if len(got) != 30 {
		t.Errorf("len(results) = %d, want 30", len(got))
	}
}

func TestSearchStopsOnRequestFailure(t *testing.T) {
	requests := 0
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 2 {
			http.Error(w, "backend error", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(itemsPage(1, 10)))
	})

	got := newClient().Search(context.Background(), "query", 30)

	if requests != 2 {
		t.Errorf("issued %d requests, want 2 (stop on the failed second page)", requests)
	}
	if len(got) != 10 {
		t.Errorf("len(results) = %d, want the 10 items from the first page", len(got))
	}
}

func TestSearchMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		engineID string
	}{
		{"no API key", "", "test-cx"},
		{"no engine id", "test-key", ""},
		{"neither", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := 0
			withServer(t, func(w http.ResponseWriter, r *http.Request) {
				requests++
			})

			c := &Client{APIKey: tt.apiKey, EngineID: tt.engineID, Logger: zerolog.Nop()}
			got := c.Search(context.Background(), "query", 50)

			if requests != 0 {
				t.Errorf("issued %d requests, want 0", requests)
			}
			if len(got) != 0 {
				t.Errorf("len(results) = %d, want 0", len(got))
			}
		})
	}
}

func TestSearchContinuesPastEmptyPage(t *testing.T) {
	requests := 0
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 2 {
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(itemsPage(1, 5)))
	})

	got := newClient().Search(context.Background(), "query", 25)

	if requests != 3 {
		t.Errorf("issued %d requests, want 3 (empty page is not a stop)", requests)
	}
	if len(got) != 10 {
		t.Errorf("len(results) = %d, want 10", len(got))
	}
}

func TestSearchRequestParameters(t *testing.T) {
	var query map[string]string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"key": r.URL.Query().Get("key"),
			"cx":  r.URL.Query().Get("cx"),
			"q":   r.URL.Query().Get("q"),
			"num": r.URL.Query().Get("num"),
		}
		w.Write([]byte(itemsPage(1, 1)))
	})

	newClient().Search(context.Background(), `("APT28") -site:a.com intext:malware`, 10)

	want := map[string]string{
		"key": "test-key",
		"cx":  "test-cx",
		"q":   `("APT28") -site:a.com intext:malware`,
		"num": "10",
	}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("request parameters = %v, want %v", query, want)
	}
}

func TestSearchKeepsAllUpstreamFields(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"title":"t","link":"l","snippet":"s","displayLink":"example.com"}]}`))
	})

	got := newClient().Search(context.Background(), "query", 10)

	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(got))
	}
	if got[0].StringField("snippet") != "s" || got[0].StringField("displayLink") != "example.com" {
		t.Errorf("upstream fields not preserved: %v", got[0])
	}
}

func TestSearchDefaultPageSize(t *testing.T) {
	var nums []string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		nums = append(nums, r.URL.Query().Get("num"))
		w.Write([]byte(`{}`))
	})

	c := &Client{APIKey: "k", EngineID: "cx", Logger: zerolog.Nop()}
	c.Search(context.Background(), "query", 10)

	if !reflect.DeepEqual(nums, []string{"10"}) {
		t.Errorf("num parameters = %v, want [10]", nums)
	}
}
