package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"sort"

	"github.com/cloudopsio/catalogwatch/internal/app"
	"github.com/cloudopsio/catalogwatch/internal/classify"
	"github.com/cloudopsio/catalogwatch/internal/config"
)

// Data holds everything the dashboard template renders.
type Data struct {
	GeneratedAt     string
	StaleThreshold  string
	LaunchThreshold int
	TotalProducts   int
	Stale           []classify.StaleRecord
	Violations      []classify.NamingViolation
	Unauthorized    []classify.UnauthorizedLaunch
	Aggregates      []classify.LaunchAggregate
	Summary         []TypeRow
	Errors          []classify.RecordError
}

// TypeRow is one product-type line of the summary table, sorted by type for
// stable rendering.
type TypeRow struct {
	ProductType string
	classify.TypeSummary
}

// BuildData projects one cycle's findings into template form.
func BuildData(f app.Findings, thresholds config.ThresholdConfig) Data {
	d := Data{
		GeneratedAt:     f.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		StaleThreshold:  classify.FormatDuration(thresholds.StaleAfter.Hours()),
		LaunchThreshold: thresholds.LaunchThreshold,
		TotalProducts:   f.Products,
		Stale:           f.Stale,
		Violations:      f.Violations,
		Unauthorized:    f.Unauthorized,
		Aggregates:      f.Aggregates,
		Errors:          f.Errors,
	}
	for pt, s := range f.Summary {
		d.Summary = append(d.Summary, TypeRow{ProductType: pt, TypeSummary: *s})
	}
	sort.Slice(d.Summary, func(i, j int) bool {
		return d.Summary[i].ProductType < d.Summary[j].ProductType
	})
	return d
}

// Render writes the dashboard HTML for one cycle.
func Render(w io.Writer, d Data) error {
	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return fmt.Errorf("parse dashboard template: %w", err)
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// WriteFile renders the dashboard to a file for export runs.
func WriteFile(path string, d Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dashboard file: %w", err)
	}
	defer f.Close()
	return Render(f, d)
}

// The template is embedded for single-binary portability.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>CatalogWatch</title>
    <style>
        :root {
            --bg: #0A0A0A;
            --surface: rgba(255, 255, 255, 0.03);
            --border: rgba(255, 255, 255, 0.1);
            --primary: #00FF99;
            --danger: #FF3366;
            --warn: #FFB020;
            --text: #F8FAFC;
            --text-dim: #94A3B8;
        }
        body {
            background: var(--bg);
            color: var(--text);
            font-family: 'SF Mono', 'Menlo', monospace;
            margin: 0;
            padding: 40px;
        }
        .header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 40px; border-bottom: 1px solid var(--border); padding-bottom: 20px; }
        .logo { font-size: 1.5rem; font-weight: bold; letter-spacing: -1px; }
        .logo span { color: var(--primary); }
        .meta { color: var(--text-dim); font-size: 0.9rem; }
        .kpi-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 20px; margin-bottom: 40px; }
        .card { background: var(--surface); border: 1px solid var(--border); border-radius: 12px; padding: 24px; }
        .card h3 { margin: 0 0 10px 0; font-size: 0.8rem; color: var(--text-dim); text-transform: uppercase; letter-spacing: 1px; }
        .card .value { font-size: 2.5rem; font-weight: bold; }
        .card .value.bad { color: var(--danger); }
        .card .value.warn { color: var(--warn); }
        .card .value.ok { color: var(--primary); }
        section { margin-bottom: 40px; }
        h2 { font-size: 1rem; text-transform: uppercase; letter-spacing: 1px; color: var(--text-dim); border-bottom: 1px solid var(--border); padding-bottom: 10px; }
        table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
        th { text-align: left; color: var(--text-dim); font-weight: normal; text-transform: uppercase; font-size: 0.7rem; letter-spacing: 1px; padding: 8px; }
        td { padding: 8px; border-top: 1px solid var(--border); }
        .empty { color: var(--text-dim); padding: 12px 8px; }
        .tag { color: var(--danger); }
    </style>
</head>
<body>
    <div class="header">
        <div class="logo">Catalog<span>Watch</span></div>
        <div class="meta">Generated {{.GeneratedAt}} &middot; stale after {{.StaleThreshold}} &middot; launch threshold {{.LaunchThreshold}}</div>
    </div>

    <div class="kpi-grid">
        <div class="card"><h3>Products</h3><div class="value">{{.TotalProducts}}</div></div>
        <div class="card"><h3>Stale</h3><div class="value {{if .Stale}}warn{{else}}ok{{end}}">{{len .Stale}}</div></div>
        <div class="card"><h3>Naming Violations</h3><div class="value {{if .Violations}}warn{{else}}ok{{end}}">{{len .Violations}}</div></div>
        <div class="card"><h3>Unauthorized</h3><div class="value {{if .Unauthorized}}bad{{else}}ok{{end}}">{{len .Unauthorized}}</div></div>
    </div>

    <section>
        <h2>Stale Products</h2>
        <table>
            <tr><th>#</th><th>Name</th><th>Type</th><th>Status</th><th>Running For</th><th>Owner</th></tr>
            {{range .Stale}}
            <tr>
                <td>{{.Index}}</td>
                <td>{{.Product.Name}}</td>
                <td>{{.Product.ProductType}}</td>
                <td>{{.Status}}</td>
                <td>{{.Duration}}</td>
                <td>{{if .Owner}}{{.Owner.FirstName}} {{.Owner.LastName}} &lt;{{.Owner.Email}}&gt;{{end}}</td>
            </tr>
            {{else}}
            <tr><td colspan="6" class="empty">No stale products.</td></tr>
            {{end}}
        </table>
    </section>

    <section>
        <h2>Naming Violations</h2>
        <table>
            <tr><th>#</th><th>Provided Name</th><th>Expected Name</th><th>Email</th><th>Reason</th></tr>
            {{range .Violations}}
            <tr>
                <td>{{.Index}}</td>
                <td class="tag">{{.ProvidedName}}</td>
                <td>{{.ExpectedName}}</td>
                <td>{{.Email}}</td>
                <td>{{.Reason}}</td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="empty">No naming violations.</td></tr>
            {{end}}
        </table>
    </section>

    <section>
        <h2>Unauthorized Launches</h2>
        <table>
            <tr><th>#</th><th>Email</th><th>Product</th><th>Type</th><th>Reason</th></tr>
            {{range .Unauthorized}}
            <tr>
                <td>{{.Index}}</td>
                <td class="tag">{{.Email}}</td>
                <td>{{.Product.Name}}</td>
                <td>{{.Product.ProductType}}</td>
                <td>{{.Reason}}</td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="empty">No unauthorized launches.</td></tr>
            {{end}}
        </table>
    </section>

    <section>
        <h2>High Launch Counts</h2>
        <table>
            <tr><th>#</th><th>Email</th><th>Count</th><th>Products</th></tr>
            {{range .Aggregates}}
            <tr>
                <td>{{.Index}}</td>
                <td>{{.Email}}</td>
                <td>{{.ProductCount}}</td>
                <td>{{range .Products}}{{.Name}} {{end}}</td>
            </tr>
            {{else}}
            <tr><td colspan="4" class="empty">No users at or above the launch threshold.</td></tr>
            {{end}}
        </table>
    </section>

    <section>
        <h2>Per-Type Summary</h2>
        <table>
            <tr><th>Type</th><th>Total</th><th>Stale</th><th>Naming</th><th>Unauthorized</th></tr>
            {{range .Summary}}
            <tr>
                <td>{{.ProductType}}</td>
                <td>{{.Total}}</td>
                <td>{{.Stale}}</td>
                <td>{{.NamingViolations}}</td>
                <td>{{.Unauthorized}}</td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="empty">No products in this snapshot.</td></tr>
            {{end}}
        </table>
    </section>

    {{if .Errors}}
    <section>
        <h2>Skipped Records</h2>
        <table>
            <tr><th>Snapshot Index</th><th>Error</th></tr>
            {{range .Errors}}
            <tr><td>{{.Index}}</td><td class="tag">{{.Err}}</td></tr>
            {{end}}
        </table>
    </section>
    {{end}}
</body>
</html>
`
