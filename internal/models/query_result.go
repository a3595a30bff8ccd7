package models

import (
	"fmt"
	"strconv"
)

// Query outcome constants, used for metrics labels.
const (
	OutcomeFound     = "found"
	OutcomeNotFound  = "not_found"
	OutcomeNotLoaded = "not_loaded"
)

// DiseaseMatch is one ranked entry from symptom matching: a disease, the
// number of dataset rows it matched, and its share of all matched rows.
type DiseaseMatch struct {
	Disease string  `json:"disease"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// FormattedPercent renders the share with two decimal places, e.g. "75.00".
func (m DiseaseMatch) FormattedPercent() string {
	return fmt.Sprintf("%.2f", m.Percent)
}

// SeverityResult is the weight looked up for a symptom.
type SeverityResult struct {
	Symptom string  `json:"symptom"`
	Weight  float64 `json:"weight"`
}

// FormattedWeight renders the weight without trailing zeros, so integer
// severity scales display as integers.
func (s SeverityResult) FormattedWeight() string {
	return strconv.FormatFloat(s.Weight, 'g', -1, 64)
}
