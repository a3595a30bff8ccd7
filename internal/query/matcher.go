package query

import (
	"sort"

	"medref/internal/models"
	"medref/internal/tables"
	"medref/internal/validation"
)

// MatchSymptoms finds candidate diseases for a raw comma-separated symptom
// list. A dataset row matches when any of its cells, normalized, equals one
// of the queried symptoms; rows with fewer populated symptom slots simply
// have fewer chances to match. Each matched row counts toward its disease,
// and every disease's share is reported as a percentage of all matched rows,
// ranked by count descending with first-seen order breaking ties.
func (s *Service) MatchSymptoms(raw string) ([]models.DiseaseMatch, error) {
	t, ok := s.store.Lookup(tables.Dataset)
	if !ok {
		return nil, ErrTableNotLoaded
	}

	symptoms := validation.ParseSymptoms(raw)
	if len(symptoms) == 0 {
		return nil, ErrNotFound
	}
	queried := make(map[string]struct{}, len(symptoms))
	for _, sym := range symptoms {
		queried[sym] = struct{}{}
	}

	diseaseCol, ok := t.ColumnIndex(colDisease)
	if !ok {
		return nil, ErrNotFound
	}

	counts := make(map[string]int)
	var firstSeen []string
	totalMatched := 0

	for _, row := range t.Rows {
		if !rowMatches(row, queried) {
			continue
		}
		totalMatched++
		disease := row.Cell(diseaseCol)
		if _, seen := counts[disease]; !seen {
			firstSeen = append(firstSeen, disease)
		}
		counts[disease]++
	}

	if totalMatched == 0 {
		return nil, ErrNotFound
	}

	matches := make([]models.DiseaseMatch, 0, len(firstSeen))
	for _, disease := range firstSeen {
		count := counts[disease]
		matches = append(matches, models.DiseaseMatch{
			Disease: disease,
			Count:   count,
			Percent: float64(count) / float64(totalMatched) * 100,
		})
	}

	// Stable sort keeps first-seen order within equal counts.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Count > matches[j].Count
	})

	return matches, nil
}

func rowMatches(row tables.Row, queried map[string]struct{}) bool {
	for _, cell := range row {
		if _, ok := queried[validation.Normalize(cell)]; ok {
			return true
		}
	}
	return false
}
