package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cloudopsio/catalogwatch/internal/app"
	"github.com/cloudopsio/catalogwatch/internal/catalog"
	"github.com/cloudopsio/catalogwatch/internal/classify"
	"github.com/cloudopsio/catalogwatch/internal/config"
)

func sampleFindings(t *testing.T) app.Findings {
	t.Helper()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	stamp := func(age time.Duration) string {
		return now.Add(-age).Format(catalog.TimeLayout)
	}
	products := []catalog.Product{
		{Name: "Jane-Doe-ec2", ProductType: "ec2", Status: "AVAILABLE", CreatedTime: stamp(26 * time.Hour), SessionARN: "x/jane@x.com"},
		{Name: "Ghost-User-vpc", ProductType: "vpc", Status: "TAINTED", CreatedTime: stamp(time.Hour), SessionARN: "x/ghost@x.com"},
	}
	roster := []catalog.User{{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}}
	return app.Classify(products, roster, classify.DefaultConfig(), now)
}

func TestRenderDashboard(t *testing.T) {
	data := BuildData(sampleFindings(t), config.Default().Thresholds)

	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"Jane-Doe-ec2",          // stale row
		"1 days",                // 26h rendered with the truncated-day quirk
		"ghost@x.com",           // unauthorized row
		"No naming violations.", // empty-section placeholder
		"stale after 8.00 hours",
		"launch threshold 2",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestBuildDataSortsSummary(t *testing.T) {
	f := sampleFindings(t)
	data := BuildData(f, config.Default().Thresholds)

	if len(data.Summary) != 2 {
		t.Fatalf("summary rows = %d, want 2", len(data.Summary))
	}
	if data.Summary[0].ProductType != "ec2" || data.Summary[1].ProductType != "vpc" {
		t.Errorf("summary not sorted by type: %+v", data.Summary)
	}
	if data.Summary[0].Stale != 1 {
		t.Errorf("ec2 stale count = %d, want 1", data.Summary[0].Stale)
	}
}

func TestRenderEmptyFindings(t *testing.T) {
	data := BuildData(app.Findings{GeneratedAt: time.Now()}, config.Default().Thresholds)

	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"No stale products.",
		"No unauthorized launches.",
		"No users at or above the launch threshold.",
		"No products in this snapshot.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("empty dashboard missing %q", want)
		}
	}
	if strings.Contains(html, "Skipped Records") {
		t.Error("error section should be absent without record errors")
	}
}
