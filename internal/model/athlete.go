package model

// Athlete is the identity and label source for risk indicators.
type Athlete struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	SportID string `json:"sportId" yaml:"sport_id"`
	Status  string `json:"status" yaml:"status"`
}
