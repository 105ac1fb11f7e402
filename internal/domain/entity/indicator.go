package entity

// GoalMin and GoalMax bound the valid Digital Responsibility Goal codes.
// Indicators tagged with anything outside this range still count toward the
// overall score but never toward a per-goal bucket.
const (
	GoalMin = 1
	GoalMax = 7
)

// IndicatorDefinition is one row of the indicator catalog.
type IndicatorDefinition struct {
	Name         string `json:"name"`
	Goal         int    `json:"goal"`
	ScoringLogic string `json:"scoring_logic"`
	Question     string `json:"question,omitempty"`
	Rationale    string `json:"rationale,omitempty"`
	Legend       string `json:"legend,omitempty"`
}

// ValidGoal reports whether the indicator belongs to one of the fixed goals.
func (d IndicatorDefinition) ValidGoal() bool {
	return d.Goal >= GoalMin && d.Goal <= GoalMax
}

// ScoreOption is one selectable answer of an indicator, parsed from its
// scoring-logic string. Value is set when the left-hand side of the option
// contains digits; otherwise Raw keeps the original token.
type ScoreOption struct {
	Value *int   `json:"value,omitempty"`
	Raw   string `json:"raw,omitempty"`
	Label string `json:"label"`
}

// LegendEntry is one (title, description) pair of an indicator legend.
type LegendEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
