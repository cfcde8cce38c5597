package notifier

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendCheckReport(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	client := NewSlackClient(srv.URL, "#catalog-alerts")
	records := []map[string]any{
		{"email": "ghost@x.com", "reason": "User does not exist in the list of users"},
	}
	if err := client.SendCheckReport("unauthorized", records); err != nil {
		t.Fatalf("SendCheckReport: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload["channel"] != "#catalog-alerts" {
		t.Errorf("channel override missing: %v", payload["channel"])
	}
	text := string(body)
	if !strings.Contains(text, "unauthorized findings (1)") {
		t.Errorf("header missing check name and count: %s", text)
	}
	if !strings.Contains(text, "ghost@x.com") || !strings.Contains(text, "```") {
		t.Errorf("record code block missing: %s", text)
	}
}

func TestSendCheckReportNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer srv.Close()

	client := NewSlackClient(srv.URL, "")
	if err := client.SendCheckReport("stale", nil); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestSendWithoutWebhookIsNoop(t *testing.T) {
	client := NewSlackClient("", "")
	if err := client.SendCheckReport("stale", nil); err != nil {
		t.Errorf("unset webhook should be a no-op, got %v", err)
	}
	if err := client.SendText("hello"); err != nil {
		t.Errorf("unset webhook should be a no-op, got %v", err)
	}
}

func TestFormatRecordsOrder(t *testing.T) {
	records := []map[string]any{
		{"name": "Jane-Doe-ec2", "duration": "2 days", "status": "AVAILABLE"},
		{"name": "A-B-s3", "duration": "9.50 hours", "status": "TAINTED"},
	}
	got := FormatRecords(records, []string{"name", "duration", "status"})

	want := "name: Jane-Doe-ec2\nduration: 2 days\nstatus: AVAILABLE\n\n" +
		"name: A-B-s3\nduration: 9.50 hours\nstatus: TAINTED\n"
	if got != want {
		t.Errorf("FormatRecords output:\n%q\nwant:\n%q", got, want)
	}
}
