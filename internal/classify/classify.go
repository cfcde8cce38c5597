// Package classify holds the product-classification engine: four
// independent classifiers plus a per-type summary, all pure functions over
// one immutable snapshot of products and roster. Nothing here mutates its
// inputs, so the classifiers are safe to run concurrently over the same
// snapshot.
package classify

import (
	"fmt"
	"time"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// Config carries the two classification thresholds. It is passed explicitly
// on every call so callers and tests can override per cycle.
type Config struct {
	StaleAfter      time.Duration
	LaunchThreshold int
}

const (
	DefaultStaleAfter      = 8 * time.Hour
	DefaultLaunchThreshold = 2
)

// DefaultConfig returns the stock thresholds: 8 hours to staleness, 2
// launches to flag a user.
func DefaultConfig() Config {
	return Config{
		StaleAfter:      DefaultStaleAfter,
		LaunchThreshold: DefaultLaunchThreshold,
	}
}

// ThresholdInstant returns the staleness cutoff in UTC. Products created
// before it are stale.
func ThresholdInstant(now time.Time, staleAfter time.Duration) time.Time {
	return now.UTC().Add(-staleAfter)
}

// parseCreatedTime accepts the catalog wire layout first and falls back to
// RFC 3339 for file-based snapshots written with colon offsets.
func parseCreatedTime(s string) (time.Time, error) {
	t, err := time.Parse(catalog.TimeLayout, s)
	if err == nil {
		return t, nil
	}
	if t, rferr := time.Parse(time.RFC3339Nano, s); rferr == nil {
		return t, nil
	}
	return time.Time{}, err
}

// FindStale returns the products created before threshold, in encounter
// order. Displayed age is measured against now rather than the threshold, so
// the same product reports a growing duration on successive cycles. A record
// with an unparseable CreatedTime is reported by position and skipped; the
// rest of the batch survives.
func FindStale(products []catalog.Product, threshold, now time.Time) ([]StaleRecord, []RecordError) {
	var stale []StaleRecord
	var errs []RecordError
	for i, p := range products {
		created, err := parseCreatedTime(p.CreatedTime)
		if err != nil {
			errs = append(errs, RecordError{
				Index: i,
				Err:   fmt.Errorf("parse CreatedTime %q: %w", p.CreatedTime, err),
			})
			continue
		}
		if !created.Before(threshold) {
			continue
		}
		rec := StaleRecord{
			Index:     len(stale),
			Product:   p,
			CreatedAt: created,
			Duration:  FormatDuration(now.Sub(created).Hours()),
			Status:    p.Status,
		}
		if owner, ok := catalog.ExtractOwnerInfo(p); ok {
			rec.Owner = &owner
		}
		stale = append(stale, rec)
	}
	return stale, errs
}

// ExpectedName is the naming convention every launch must follow.
func ExpectedName(u catalog.User, productType string) string {
	return fmt.Sprintf("%s-%s-%s", u.FirstName, u.LastName, productType)
}

// FindNamingViolations checks every product whose owner email matches a
// roster entry against the naming convention. Products without a roster
// match are skipped silently: no expected name is computable for them, and
// FindUnauthorized owns that case.
func FindNamingViolations(roster []catalog.User, products []catalog.Product) []NamingViolation {
	var out []NamingViolation
	for _, p := range products {
		user, ok := catalog.MatchRoster(catalog.OwnerEmail(p), roster)
		if !ok {
			continue
		}
		expected := ExpectedName(user, p.ProductType)
		if p.Name == expected {
			continue
		}
		out = append(out, NamingViolation{
			Error:        ErrTagNaming,
			Index:        len(out),
			ProvidedName: p.Name,
			ExpectedName: expected,
			Email:        user.Email,
			Reason:       ReasonNaming,
			Product:      p,
			MatchedUser:  user,
		})
	}
	return out
}

// FindUnauthorized flags every product whose owner email has no roster
// match, carrying whatever identity the product itself encodes.
func FindUnauthorized(roster []catalog.User, products []catalog.Product) []UnauthorizedLaunch {
	var out []UnauthorizedLaunch
	for _, p := range products {
		email := catalog.OwnerEmail(p)
		if _, ok := catalog.MatchRoster(email, roster); ok {
			continue
		}
		rec := UnauthorizedLaunch{
			Error:   ErrTagUnauthorized,
			Index:   len(out),
			Email:   email,
			Reason:  ReasonUnauthorized,
			Product: p,
		}
		if owner, ok := catalog.ExtractOwnerInfo(p); ok {
			rec.Owner = &owner
		}
		out = append(out, rec)
	}
	return out
}

// AggregateLaunches groups products by owner email in first-seen order and
// emits one aggregate per user whose count reaches threshold. Owner identity
// comes from the user's first product. Groups below threshold emit nothing.
func AggregateLaunches(products []catalog.Product, threshold int) []LaunchAggregate {
	var order []string
	groups := make(map[string][]catalog.Product)
	for _, p := range products {
		email := catalog.OwnerEmail(p)
		if _, seen := groups[email]; !seen {
			order = append(order, email)
		}
		groups[email] = append(groups[email], p)
	}

	var out []LaunchAggregate
	for _, email := range order {
		g := groups[email]
		if len(g) < threshold {
			continue
		}
		agg := LaunchAggregate{
			Message:      MessageHighLaunchCount,
			Index:        len(out),
			Email:        email,
			ProductCount: len(g),
			Products:     g,
		}
		if owner, ok := catalog.ExtractOwnerInfo(g[0]); ok {
			agg.Owner = &owner
		}
		out = append(out, agg)
	}
	return out
}

// Summarize walks the snapshot once and counts per-product-type totals,
// stale products, naming violations and unauthorized launches, evaluating
// each predicate fresh per product. A product type appears in the result on
// first encounter with all counters at zero.
func Summarize(products []catalog.Product, roster []catalog.User, cfg Config, now time.Time) map[string]*TypeSummary {
	threshold := ThresholdInstant(now, cfg.StaleAfter)
	out := make(map[string]*TypeSummary)
	for _, p := range products {
		s, ok := out[p.ProductType]
		if !ok {
			s = &TypeSummary{}
			out[p.ProductType] = s
		}
		s.Total++

		if created, err := parseCreatedTime(p.CreatedTime); err == nil && created.Before(threshold) {
			s.Stale++
		}

		user, ok := catalog.MatchRoster(catalog.OwnerEmail(p), roster)
		if !ok {
			s.Unauthorized++
			continue
		}
		if p.Name != ExpectedName(user, p.ProductType) {
			s.NamingViolations++
		}
	}
	return out
}
