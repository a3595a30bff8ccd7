package handlers

import (
	"testing"

	"medref/internal/query"
)

func TestQueryOptionsCoverAllTypes(t *testing.T) {
	options := queryOptions()

	if len(options) != len(query.Types()) {
		t.Fatalf("queryOptions() has %d entries, want %d", len(options), len(query.Types()))
	}

	for _, opt := range options {
		typ, ok := query.ParseType(opt.Value)
		if !ok {
			t.Errorf("option value %q does not parse as a query type", opt.Value)
			continue
		}
		if typ.Label() != opt.Label {
			t.Errorf("option label for %q = %q, want %q", opt.Value, opt.Label, typ.Label())
		}
	}
}
