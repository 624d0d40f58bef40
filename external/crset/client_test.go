package crset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		RetryBackoff: time.Millisecond,
		Logger:       logging.NewNop(),
	})
}

func TestClient_Standings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/standings/PD/2023" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"standings":[
			{"position":1,"team":"Real Madrid","points":95},
			{"position":"2","team":{"name":"Barcelona"},"points":85}
		]}`))
	}))
	defer srv.Close()

	got := newTestClient(srv.URL+"/api/standings").Standings(context.Background(), "pd", "2023")
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Position != 1 || got[0].Team != "Real Madrid" || got[0].Points != 95 {
		t.Fatalf("unexpected first row %+v", got[0])
	}
	if got[1].Position != 2 || got[1].Team != "Barcelona" || got[1].Points != 85 {
		t.Fatalf("unexpected second row %+v", got[1])
	}
}

func TestClient_Standings_Defaults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PL/2023" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"standings":[]}`))
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).Standings(context.Background(), "", " ")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty table, got %+v", got)
	}
}

func TestClient_Standings_NotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown league", http.StatusNotFound)
	}))
	defer srv.Close()

	if got := newTestClient(srv.URL).Standings(context.Background(), "XX", "1900"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
