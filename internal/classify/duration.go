package classify

import "fmt"

// FormatDuration renders an elapsed hour count the way the dashboard shows
// it: whole days at or past 24 hours, two-decimal hours below. The day form
// pluralizes on the fractional day count while displaying the truncated one,
// so exactly 24h is "1 day" but 30h is "1 days". Kept for output
// compatibility with existing consumers.
func FormatDuration(hours float64) string {
	if hours >= 24 {
		days := hours / 24
		suffix := ""
		if days > 1 {
			suffix = "s"
		}
		return fmt.Sprintf("%d day%s", int(days), suffix)
	}
	return fmt.Sprintf("%.2f hours", hours)
}
