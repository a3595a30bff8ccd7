package models

// DescriptionResponse contains a disease description lookup result.
type DescriptionResponse struct {
	Disease     string `json:"disease"`
	Description string `json:"description"`
}

// PrecautionsResponse lists the populated precaution slots for a disease.
type PrecautionsResponse struct {
	Disease     string   `json:"disease"`
	Precautions []string `json:"precautions"`
}

// MatchResponse contains the ranked output of symptom matching.
type MatchResponse struct {
	Symptoms []string       `json:"symptoms"`
	Matches  []DiseaseMatch `json:"matches"`
}

// AnswersResponse carries Q&A corpus answers for a topic lookup
// (causes, diagnosis, research).
type AnswersResponse struct {
	Disease string   `json:"disease"`
	Topic   string   `json:"topic"`
	Answers []string `json:"answers"`
}
