package entity

// Scorecard is the derived rating of a company: one normalized 0..10 value per
// goal plus a single overall value. It is recomputed from the raw scores and
// the catalog on every read; stored copies are caches only.
type Scorecard struct {
	PerGoal map[int]float64 `json:"per_goal"`
	Overall float64         `json:"overall"`
}
