package query

import (
	"strings"

	"medref/internal/tables"
	"medref/internal/validation"
)

// firstExactMatch selects the first row whose normalized cell in column
// equals the normalized value. Tables queried this way are assumed keyed
// uniquely by that column; when they are not, first row by table order wins.
func firstExactMatch(t *tables.Table, column, value string) (tables.Row, error) {
	want := validation.Normalize(value)
	if want == "" {
		return nil, ErrNotFound
	}
	for _, row := range t.Rows {
		if validation.Normalize(t.Value(row, column)) == want {
			return row, nil
		}
	}
	return nil, ErrNotFound
}

// substringMatches selects every row whose normalized textColumn contains
// both the normalized needle and the topic keyword, returning the valueColumn
// cells in table order without deduplication.
func substringMatches(t *tables.Table, textColumn, valueColumn, needle, topic string) ([]string, error) {
	want := validation.Normalize(needle)
	if want == "" {
		return nil, ErrNotFound
	}
	var values []string
	for _, row := range t.Rows {
		text := validation.Normalize(t.Value(row, textColumn))
		if strings.Contains(text, want) && strings.Contains(text, topic) {
			values = append(values, t.Value(row, valueColumn))
		}
	}
	if len(values) == 0 {
		return nil, ErrNotFound
	}
	return values, nil
}
