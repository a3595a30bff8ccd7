package query

import (
	"fmt"

	"medref/internal/models"
)

// Type is the closed enumeration of supported query types.
type Type int

const (
	TypeDescription Type = iota
	TypeSymptoms
	TypePrecautions
	TypeSeverity
	TypeCauses
	TypeDiagnosis
	TypeResearch
)

// typeNames are the wire/UI identifiers for each query type.
var typeNames = map[Type]string{
	TypeDescription: "description",
	TypeSymptoms:    "symptoms",
	TypePrecautions: "precautions",
	TypeSeverity:    "severity",
	TypeCauses:      "causes",
	TypeDiagnosis:   "diagnosis",
	TypeResearch:    "research",
}

// Types lists all query types in presentation order.
func Types() []Type {
	return []Type{
		TypeDescription, TypeSymptoms, TypePrecautions, TypeSeverity,
		TypeCauses, TypeDiagnosis, TypeResearch,
	}
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// Label returns the human-readable name for the query type.
func (t Type) Label() string {
	switch t {
	case TypeDescription:
		return "Disease Description"
	case TypeSymptoms:
		return "Symptom Matching"
	case TypePrecautions:
		return "Precautions for a Disease"
	case TypeSeverity:
		return "Symptom Severity"
	case TypeCauses:
		return "Causes of a Disease"
	case TypeDiagnosis:
		return "Diagnosis of a Disease"
	case TypeResearch:
		return "Research about a Disease"
	}
	return t.String()
}

// ParseType resolves a wire identifier to a query type.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// ResultKind tags which Result field carries the payload.
type ResultKind int

const (
	KindText    ResultKind = iota // single string (description, severity)
	KindList                      // ordered strings (precautions, Q&A answers)
	KindMatches                   // ranked disease matches
)

// Result is the presentation-neutral output of a dispatched query.
type Result struct {
	Type    Type
	Kind    ResultKind
	Text    string
	Items   []string
	Matches []models.DiseaseMatch
}

// Dispatch runs the query operation bound to the given type. The switch is
// exhaustive over the Type enumeration; an unknown type is a caller bug and
// reports as an error rather than a panic.
func Dispatch(svc *Service, typ Type, input string) (*Result, error) {
	switch typ {
	case TypeDescription:
		text, err := svc.DescribeDisease(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindText, Text: text}, nil

	case TypeSymptoms:
		matches, err := svc.MatchSymptoms(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindMatches, Matches: matches}, nil

	case TypePrecautions:
		items, err := svc.PrecautionsFor(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindList, Items: items}, nil

	case TypeSeverity:
		severity, err := svc.SeverityOf(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindText, Text: severity.Symptom + ": " + severity.FormattedWeight()}, nil

	case TypeCauses:
		items, err := svc.CausesOf(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindList, Items: items}, nil

	case TypeDiagnosis:
		items, err := svc.DiagnosisOf(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindList, Items: items}, nil

	case TypeResearch:
		items, err := svc.ResearchOn(input)
		if err != nil {
			return nil, err
		}
		return &Result{Type: typ, Kind: KindList, Items: items}, nil
	}

	return nil, fmt.Errorf("unsupported query type %d", int(typ))
}
