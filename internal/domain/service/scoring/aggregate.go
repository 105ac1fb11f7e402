package scoring

import (
	"math"

	"dri_index/internal/domain/entity"
)

// Aggregate computes a company's scorecard from its raw scores and the
// indicator catalog.
//
// Every goal 1..7 appears in the result even when the catalog has no
// indicator for it. A raw score missing from rawScores counts as 0. An
// indicator whose goal falls outside 1..7 contributes to the overall score
// but to no per-goal bucket; this asymmetry is intentional and load-bearing.
// Zero denominators yield 0 rather than NaN. Inputs are never mutated.
func Aggregate(rawScores map[string]float64, catalog []entity.IndicatorDefinition) entity.Scorecard {
	totals := make(map[int]float64, entity.GoalMax)
	maxTotals := make(map[int]float64, entity.GoalMax)

	for goal := entity.GoalMin; goal <= entity.GoalMax; goal++ {
		totals[goal] = 0
		maxTotals[goal] = 0
	}

	var grandTotal, grandMax float64

	for _, def := range catalog {
		raw := rawScores[def.Name]
		max := float64(MaxScore(def.ScoringLogic))

		if def.ValidGoal() {
			totals[def.Goal] += raw
			maxTotals[def.Goal] += max
		}

		// The overall score counts every indicator, valid goal or not.
		grandTotal += raw
		grandMax += max
	}

	perGoal := make(map[int]float64, entity.GoalMax)
	for goal := entity.GoalMin; goal <= entity.GoalMax; goal++ {
		perGoal[goal] = normalize(totals[goal], maxTotals[goal])
	}

	return entity.Scorecard{
		PerGoal: perGoal,
		Overall: normalize(grandTotal, grandMax),
	}
}

// normalize maps total/max onto the 0..10 scale, rounded half-up to two
// decimal places. Raw scores above an indicator's stated maximum are not
// clamped; callers get values above 10 in that case, by contract.
func normalize(total, max float64) float64 {
	if max == 0 {
		return 0
	}

	return math.Round(total/max*10*100) / 100
}
