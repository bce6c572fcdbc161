package loader

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Rana718/bankseed/internal/types"
)

// TimestampLayout is the canonical form of every normalized date column.
const TimestampLayout = "2006-01-02 15:04:05"

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func isDateColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "date")
}

func parseTimestamp(s string) (time.Time, bool) {
	if d, err := civil.ParseDate(s); err == nil {
		return d.In(time.UTC), true
	}
	if dt, err := civil.ParseDateTime(s); err == nil {
		return dt.In(time.UTC), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDateColumns rewrites every column whose name contains "date" into
// TimestampLayout. A column is rewritten only if all of its non-empty values
// parse; otherwise it is left untouched. Returns the rewritten column names.
func NormalizeDateColumns(t *types.Table) []string {
	var normalized []string

	for c, name := range t.Columns {
		if !isDateColumn(name) {
			continue
		}

		formatted := make([]string, len(t.Rows))
		ok := true
		for r, row := range t.Rows {
			value := strings.TrimSpace(row[c])
			if value == "" {
				continue
			}
			ts, parsed := parseTimestamp(value)
			if !parsed {
				ok = false
				break
			}
			formatted[r] = ts.Format(TimestampLayout)
		}
		if !ok {
			continue
		}

		for r, row := range t.Rows {
			row[c] = formatted[r]
		}
		normalized = append(normalized, name)
	}
	return normalized
}
