package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes which CSV files back which named datasets.
// Kept in a YAML file so deployments can swap datasets without code changes.
type Manifest struct {
	Datasets []DatasetEntry `yaml:"datasets"`
}

// DatasetEntry maps a dataset name to its CSV file (relative to DataDir).
type DatasetEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// DefaultManifest returns the built-in dataset manifest matching the
// standard reference file layout.
func DefaultManifest() *Manifest {
	return &Manifest{
		Datasets: []DatasetEntry{
			{Name: "dataset", File: "dataset.csv"},
			{Name: "symptom_description", File: "symptom_description.csv"},
			{Name: "symptom_precaution", File: "symptom_precaution.csv"},
			{Name: "symptom_severity", File: "Symptom-severity.csv"},
			{Name: "medquad", File: "medquad.csv"},
		},
	}
}

// LoadManifest loads the dataset manifest from the given path.
// Returns the default manifest if the file doesn't exist.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Manifest file is optional
			return DefaultManifest(), nil
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if len(m.Datasets) == 0 {
		return DefaultManifest(), nil
	}

	return &m, nil
}

// Entry finds a dataset entry by name.
func (m *Manifest) Entry(name string) *DatasetEntry {
	if m == nil {
		return nil
	}
	for i := range m.Datasets {
		if m.Datasets[i].Name == name {
			return &m.Datasets[i]
		}
	}
	return nil
}
