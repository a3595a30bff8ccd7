package validation

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "cough", "cough"},
		{"uppercase", "COUGH", "cough"},
		{"mixed case", "Common Cold", "common cold"},
		{"leading whitespace", "  fever", "fever"},
		{"trailing whitespace", "fever\t ", "fever"},
		{"surrounding whitespace", " Fever ", "fever"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"internal whitespace preserved", "high  fever", "high  fever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSymptoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single symptom", "cough", []string{"cough"}},
		{"multiple symptoms", "cough, fever", []string{"cough", "fever"}},
		{"mixed case and spacing", " Cough ,FEVER,  Headache", []string{"cough", "fever", "headache"}},
		{"duplicates kept", "cough,cough", []string{"cough", "cough"}},
		{"empty input", "", nil},
		{"commas only", ",,,", nil},
		{"whitespace between commas", " , , ", nil},
		{"trailing comma", "cough,", []string{"cough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSymptoms(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSymptoms(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
