// Package query implements the lookup operations over the reference tables:
// disease descriptions, symptom matching, precautions, severity weights, and
// topic retrieval from the Q&A corpus.
package query

import (
	"strconv"

	"medref/internal/models"
	"medref/internal/tables"
)

// Column names in the reference datasets.
const (
	colDisease     = "Disease"
	colDescription = "Description"
	colSymptom     = "Symptom"
	colWeight      = "weight"
	colQuestion    = "question"
	colAnswer      = "answer"
)

// Topic keywords for Q&A corpus lookups. A question row must contain both
// the disease name and the topic keyword to match.
const (
	topicCause    = "cause"
	topicDiagnose = "diagnose"
	topicResearch = "research"
)

// precautionColumns are the fixed precaution slots, in reporting order.
var precautionColumns = []string{"Precaution_1", "Precaution_2", "Precaution_3", "Precaution_4"}

// Service exposes one operation per query type over an immutable table
// store. All comparisons use normalized forms; every operation returns
// ErrTableNotLoaded or ErrNotFound instead of panicking on bad input.
type Service struct {
	store *tables.Store
}

// NewService creates a query service over the given store.
func NewService(store *tables.Store) *Service {
	return &Service{store: store}
}

// DescribeDisease returns the description of the named disease.
// Matching is case-insensitive exact; the first matching row wins.
func (s *Service) DescribeDisease(name string) (string, error) {
	t, ok := s.store.Lookup(tables.SymptomDescription)
	if !ok {
		return "", ErrTableNotLoaded
	}
	row, err := firstExactMatch(t, colDisease, name)
	if err != nil {
		return "", err
	}
	return t.Value(row, colDescription), nil
}

// PrecautionsFor returns the populated precaution slots for the named
// disease, preserving slot order. A disease with no populated slots returns
// an empty list, which is distinct from the disease not being found.
func (s *Service) PrecautionsFor(name string) ([]string, error) {
	t, ok := s.store.Lookup(tables.SymptomPrecaution)
	if !ok {
		return nil, ErrTableNotLoaded
	}
	row, err := firstExactMatch(t, colDisease, name)
	if err != nil {
		return nil, err
	}
	precautions := make([]string, 0, len(precautionColumns))
	for _, col := range precautionColumns {
		if p := t.Value(row, col); p != "" {
			precautions = append(precautions, p)
		}
	}
	return precautions, nil
}

// SeverityOf returns the numeric weight of the named symptom. A row whose
// weight cell is not numeric is unusable and reports as not found.
func (s *Service) SeverityOf(symptom string) (models.SeverityResult, error) {
	t, ok := s.store.Lookup(tables.SymptomSeverity)
	if !ok {
		return models.SeverityResult{}, ErrTableNotLoaded
	}
	row, err := firstExactMatch(t, colSymptom, symptom)
	if err != nil {
		return models.SeverityResult{}, err
	}
	weight, err := strconv.ParseFloat(t.Value(row, colWeight), 64)
	if err != nil {
		return models.SeverityResult{}, ErrNotFound
	}
	return models.SeverityResult{Symptom: t.Value(row, colSymptom), Weight: weight}, nil
}

// CausesOf returns all Q&A answers whose question mentions both the disease
// and causes, in corpus order.
func (s *Service) CausesOf(name string) ([]string, error) {
	return s.topicAnswers(name, topicCause)
}

// DiagnosisOf returns all Q&A answers whose question mentions both the
// disease and diagnosis, in corpus order.
func (s *Service) DiagnosisOf(name string) ([]string, error) {
	return s.topicAnswers(name, topicDiagnose)
}

// ResearchOn returns all Q&A answers whose question mentions both the
// disease and research, in corpus order.
func (s *Service) ResearchOn(name string) ([]string, error) {
	return s.topicAnswers(name, topicResearch)
}

func (s *Service) topicAnswers(name, topic string) ([]string, error) {
	t, ok := s.store.Lookup(tables.MedQuad)
	if !ok {
		return nil, ErrTableNotLoaded
	}
	return substringMatches(t, colQuestion, colAnswer, name, topic)
}
