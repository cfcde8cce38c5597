package classify

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0.00 hours"},
		{1.5, "1.50 hours"},
		{23.99, "23.99 hours"},
		{24, "1 day"},
		// Pluralizes on the fractional day count but displays the
		// truncated one.
		{30, "1 days"},
		{48, "2 days"},
		{49, "2 days"},
		{72.5, "3 days"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.hours); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}
