package entity

import "time"

// Company is one evaluated organisation. Scores maps indicator name to the
// raw score given by the evaluator; indicators absent from the map count as
// scored 0. Derived ratings are never stored authoritatively, see Scorecard.
type Company struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Website   string             `json:"website,omitempty"`
	Scores    map[string]float64 `json:"scores"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
