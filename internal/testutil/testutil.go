// Package testutil provides fixture tables and stores for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"medref/internal/tables"
)

// DatasetTable builds a small symptom-disease dataset: three Common Cold
// rows and one Flu row share a cough slot, matching the documented ranking
// example (75.00% / 25.00%).
func DatasetTable() *tables.Table {
	return tables.NewTable(tables.Dataset,
		[]string{"Disease", "Symptom_1", "Symptom_2", "Symptom_3"},
		[]tables.Row{
			{"Common Cold", "cough", "runny_nose", "sneezing"},
			{"Common Cold", "cough", "sore_throat", ""},
			{"Common Cold", "cough", "headache", "fatigue"},
			{"Flu", "cough", "high_fever", "muscle_pain"},
			{"Migraine", "headache", "nausea", "visual_disturbances"},
		})
}

// DescriptionTable builds a disease description fixture with a duplicate
// Flu row so first-row-wins behavior is observable.
func DescriptionTable() *tables.Table {
	return tables.NewTable(tables.SymptomDescription,
		[]string{"Disease", "Description"},
		[]tables.Row{
			{"Flu", "An infectious disease caused by influenza viruses."},
			{"Flu", "DUPLICATE ROW - should never be returned."},
			{"Common Cold", "A viral infection of the upper respiratory tract."},
		})
}

// PrecautionTable builds a precaution fixture; Migraine has only two of
// four slots populated.
func PrecautionTable() *tables.Table {
	return tables.NewTable(tables.SymptomPrecaution,
		[]string{"Disease", "Precaution_1", "Precaution_2", "Precaution_3", "Precaution_4"},
		[]tables.Row{
			{"Flu", "rest", "drink plenty of fluids", "take antiviral medication", "avoid contact"},
			{"Migraine", "rest in a dark room", "avoid triggers", "", ""},
			{"Common Cold", "", "", "", ""},
		})
}

// SeverityTable builds a severity fixture including a malformed weight.
func SeverityTable() *tables.Table {
	return tables.NewTable(tables.SymptomSeverity,
		[]string{"Symptom", "weight"},
		[]tables.Row{
			{"cough", "4"},
			{"high_fever", "7"},
			{"itching", "not-a-number"},
		})
}

// MedQuadTable builds a Q&A corpus fixture covering the three topic
// keywords plus a row that names a disease without any topic keyword.
func MedQuadTable() *tables.Table {
	return tables.NewTable(tables.MedQuad,
		[]string{"question", "answer"},
		[]tables.Row{
			{"What causes Flu?", "Influenza viruses spread through droplets."},
			{"What research is being done on Flu?", "Universal vaccine trials are ongoing."},
			{"How to diagnose Glaucoma?", "Through a comprehensive dilated eye exam."},
			{"What causes Glaucoma?", "Damage to the optic nerve from fluid pressure."},
			{"Is Flu contagious?", "Yes, highly contagious."},
			{"What causes Flu in children?", "The same influenza viruses as in adults."},
		})
}

// FixtureStore builds a store holding all five fixture tables.
func FixtureStore(t *testing.T) *tables.Store {
	t.Helper()
	return tables.NewStore(
		DatasetTable(),
		DescriptionTable(),
		PrecautionTable(),
		SeverityTable(),
		MedQuadTable(),
	)
}

// WriteCSV writes a CSV fixture file into dir and returns its path.
func WriteCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}
