package query_test

import (
	"errors"
	"math"
	"testing"

	"medref/internal/query"
	"medref/internal/tables"
	"medref/internal/testutil"
)

func fixtureService(t *testing.T) *query.Service {
	t.Helper()
	return query.NewService(testutil.FixtureStore(t))
}

func TestMatchSymptomsRanksByFrequency(t *testing.T) {
	svc := fixtureService(t)

	// cough appears in 3 Common Cold rows and 1 Flu row.
	matches, err := svc.MatchSymptoms("cough")
	if err != nil {
		t.Fatalf("MatchSymptoms() unexpected error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 diseases, got %d: %v", len(matches), matches)
	}
	if matches[0].Disease != "Common Cold" || matches[0].FormattedPercent() != "75.00" {
		t.Errorf("rank 1 = %s (%s%%), want Common Cold (75.00%%)",
			matches[0].Disease, matches[0].FormattedPercent())
	}
	if matches[1].Disease != "Flu" || matches[1].FormattedPercent() != "25.00" {
		t.Errorf("rank 2 = %s (%s%%), want Flu (25.00%%)",
			matches[1].Disease, matches[1].FormattedPercent())
	}
}

func TestMatchSymptomsPercentagesSumTo100(t *testing.T) {
	svc := fixtureService(t)

	inputs := []string{
		"cough",
		"cough, headache",
		"sneezing, high_fever, nausea",
		"HEADACHE",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			matches, err := svc.MatchSymptoms(input)
			if err != nil {
				t.Fatalf("MatchSymptoms(%q) unexpected error: %v", input, err)
			}
			sum := 0.0
			for _, m := range matches {
				sum += m.Percent
			}
			if math.Abs(sum-100.0) > 0.01 {
				t.Errorf("percentages sum to %.4f, want 100.00", sum)
			}
		})
	}
}

func TestMatchSymptomsNormalizesTokens(t *testing.T) {
	svc := fixtureService(t)

	matches, err := svc.MatchSymptoms("  COUGH , Fever ")
	if err != nil {
		t.Fatalf("MatchSymptoms() unexpected error: %v", err)
	}
	if matches[0].Disease != "Common Cold" {
		t.Errorf("rank 1 = %s, want Common Cold", matches[0].Disease)
	}
}

func TestMatchSymptomsEmptyInput(t *testing.T) {
	svc := fixtureService(t)

	for _, input := range []string{"", ",,,", "   ", " , "} {
		t.Run("input="+input, func(t *testing.T) {
			if _, err := svc.MatchSymptoms(input); !errors.Is(err, query.ErrNotFound) {
				t.Errorf("MatchSymptoms(%q) error = %v, want ErrNotFound", input, err)
			}
		})
	}
}

func TestMatchSymptomsNoMatches(t *testing.T) {
	svc := fixtureService(t)

	if _, err := svc.MatchSymptoms("telepathy"); !errors.Is(err, query.ErrNotFound) {
		t.Errorf("MatchSymptoms() error = %v, want ErrNotFound", err)
	}
}

func TestMatchSymptomsDatasetAbsent(t *testing.T) {
	svc := query.NewService(tables.NewStore(testutil.DescriptionTable()))

	if _, err := svc.MatchSymptoms("cough"); !errors.Is(err, query.ErrTableNotLoaded) {
		t.Errorf("MatchSymptoms() error = %v, want ErrTableNotLoaded", err)
	}
}

func TestMatchSymptomsShortRowsStillParticipate(t *testing.T) {
	svc := fixtureService(t)

	// sore_throat only appears in the Common Cold row with an empty
	// trailing slot.
	matches, err := svc.MatchSymptoms("sore_throat")
	if err != nil {
		t.Fatalf("MatchSymptoms() unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Disease != "Common Cold" {
		t.Fatalf("matches = %v, want single Common Cold", matches)
	}
	if matches[0].FormattedPercent() != "100.00" {
		t.Errorf("percent = %s, want 100.00", matches[0].FormattedPercent())
	}
}

func TestMatchSymptomsTieBreaksByFirstSeen(t *testing.T) {
	store := tables.NewStore(tables.NewTable(tables.Dataset,
		[]string{"Disease", "Symptom_1"},
		[]tables.Row{
			{"Bravo", "fever"},
			{"Alpha", "fever"},
		}))
	svc := query.NewService(store)

	matches, err := svc.MatchSymptoms("fever")
	if err != nil {
		t.Fatalf("MatchSymptoms() unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 diseases, got %d", len(matches))
	}
	if matches[0].Disease != "Bravo" || matches[1].Disease != "Alpha" {
		t.Errorf("tie order = [%s, %s], want first-seen [Bravo, Alpha]",
			matches[0].Disease, matches[1].Disease)
	}
}
