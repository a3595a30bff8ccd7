// Package tables loads the reference CSV datasets into immutable in-memory
// tables and exposes lookup by dataset name.
package tables

// Known dataset names. The manifest maps these to CSV files on disk.
const (
	Dataset            = "dataset"             // Disease -> symptom slot columns
	SymptomDescription = "symptom_description" // Disease -> Description
	SymptomPrecaution  = "symptom_precaution"  // Disease -> Precaution_1..4
	SymptomSeverity    = "symptom_severity"    // Symptom -> weight
	MedQuad            = "medquad"             // question -> answer corpus
)

// Row is a single table record. Cells align with the table's Columns;
// missing trailing cells read as the empty string.
type Row []string

// Cell returns the cell at index i, or "" when the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Table is a named, ordered collection of rows. Tables are immutable after
// load; callers must not modify Columns or Rows.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row

	index map[string]int
}

// NewTable builds a table from column names and rows.
func NewTable(name string, columns []string, rows []Row) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		// First occurrence wins on duplicate headers.
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return &Table{Name: name, Columns: columns, Rows: rows, index: index}
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Value returns the named column's cell in the given row, or "" when the
// column does not exist or the row is short.
func (t *Table) Value(row Row, column string) string {
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	return row.Cell(i)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
