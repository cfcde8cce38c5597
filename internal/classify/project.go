package classify

import "time"

// FieldMapper exposes a record's projectable fields by wire name.
type FieldMapper interface {
	FieldMap() map[string]any
}

// Project shrinks records down to the requested fields before they are
// serialized into a Slack or email payload. A requested field absent from a
// record maps to an explicit nil rather than being dropped, and time.Time
// values are rendered as RFC 3339 strings. Go maps carry no iteration order;
// renderers that need the requested order walk the fields slice over each
// mapping (see notifier.FormatRecords).
func Project[T FieldMapper](records []T, fields []string) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		src := r.FieldMap()
		m := make(map[string]any, len(fields))
		for _, f := range fields {
			v, ok := src[f]
			if !ok {
				m[f] = nil
				continue
			}
			if ts, isTime := v.(time.Time); isTime {
				v = ts.Format(time.RFC3339)
			}
			m[f] = v
		}
		out = append(out, m)
	}
	return out
}
