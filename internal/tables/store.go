package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"medref/internal/config"
)

// ErrEmptyFile marks a CSV file with no header row.
var ErrEmptyFile = errors.New("empty csv file")

// DatasetStatus reports the load outcome of one dataset for health surfaces.
type DatasetStatus struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Loaded bool   `json:"loaded"`
	Rows   int    `json:"rows"`
	Error  string `json:"error,omitempty"`
}

// Store holds the loaded datasets. A dataset that failed to load is absent
// from the store; consumers must check Lookup's second return value.
// The store is read-only after Load and safe for concurrent use.
type Store struct {
	tables map[string]*Table
	status []DatasetStatus
}

// Load reads every dataset in the manifest from dir. Each dataset loads
// independently: a missing, empty, or unreadable file marks that dataset
// absent and loading continues with the rest.
func Load(dir string, manifest *config.Manifest) *Store {
	store := &Store{tables: make(map[string]*Table, len(manifest.Datasets))}

	for _, entry := range manifest.Datasets {
		path := filepath.Join(dir, entry.File)
		status := DatasetStatus{Name: entry.Name, File: entry.File}

		table, err := loadCSV(entry.Name, path)
		if err != nil {
			status.Error = err.Error()
			slog.Warn("dataset not loaded", "dataset", entry.Name, "file", path, "error", err)
		} else {
			store.tables[entry.Name] = table
			status.Loaded = true
			status.Rows = table.Len()
			slog.Info("dataset loaded", "dataset", entry.Name, "rows", table.Len())
		}

		store.status = append(store.status, status)
	}

	return store
}

// NewStore builds a store directly from tables. Used by tests and fixtures.
func NewStore(ts ...*Table) *Store {
	store := &Store{tables: make(map[string]*Table, len(ts))}
	for _, t := range ts {
		store.tables[t.Name] = t
		store.status = append(store.status, DatasetStatus{Name: t.Name, Loaded: true, Rows: t.Len()})
	}
	return store
}

// Lookup returns the named table, or false when it never loaded.
func (s *Store) Lookup(name string) (*Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Status reports the load state of every manifest dataset.
func (s *Store) Status() []DatasetStatus {
	out := make([]DatasetStatus, len(s.status))
	copy(out, s.status)
	return out
}

// loadCSV parses one CSV file into a table. The first record is the header;
// short data records are padded and long ones truncated to the header width.
// Records the parser cannot handle are skipped rather than failing the file.
func loadCSV(name, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // symptom slot columns vary per row

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: swallow at load time, keep the rest.
			continue
		}
		if len(record) > len(header) {
			record = record[:len(header)]
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		rows = append(rows, Row(record))
	}

	return NewTable(name, header, rows), nil
}
