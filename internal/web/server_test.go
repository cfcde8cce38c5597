package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudopsio/catalogwatch/internal/app"
	internalaws "github.com/cloudopsio/catalogwatch/internal/aws"
	"github.com/cloudopsio/catalogwatch/internal/config"
)

func testServer() *Server {
	mock := internalaws.NewMockSource()
	return NewServer(
		config.Default(),
		&app.Clients{Products: mock, Roster: mock},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestDashboardRoute(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	// The mock snapshot exercises all classifiers; spot-check rows.
	for _, want := range []string{"Jane-Doe-ec2", "ghost@nowhere.io", "scratch-env"} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestSendEmailValidation(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/send-email", "application/json",
		strings.NewReader(`{"check": "stale"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing email: status = %d, want 400", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/send-email", "application/json",
		strings.NewReader(`{"email": "jane@x.com", "check": "stale"}`))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	// No SES client wired in tests.
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("unconfigured email: status = %d, want 503 (body %s)", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "not configured") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestSendEmailRejectsGarbage(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/send-email", "application/json",
		strings.NewReader(`{not json`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("garbage body: status = %d, want 400", resp.StatusCode)
	}
}
