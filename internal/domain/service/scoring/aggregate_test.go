package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dri_index/internal/domain/entity"
	"dri_index/internal/domain/service/scoring"
)

func TestAggregateEmptyCatalog(t *testing.T) {
	rq := require.New(t)

	card := scoring.Aggregate(nil, nil)

	rq.Len(card.PerGoal, 7)
	for goal := entity.GoalMin; goal <= entity.GoalMax; goal++ {
		rq.Contains(card.PerGoal, goal)
		rq.Zero(card.PerGoal[goal])
	}
	rq.Zero(card.Overall)
}

func TestAggregateAllGoalsAlwaysPresent(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "indicatorA", Goal: 3, ScoringLogic: "2=Yes;0=No"},
	}

	card := scoring.Aggregate(map[string]float64{"indicatorA": 2}, catalog)

	rq.Len(card.PerGoal, 7)
	rq.Equal(10.0, card.PerGoal[3])
	for goal := entity.GoalMin; goal <= entity.GoalMax; goal++ {
		if goal != 3 {
			rq.Zero(card.PerGoal[goal])
		}
	}
	rq.Equal(10.0, card.Overall)
}

func TestAggregateInvalidGoalCountsTowardOverallOnly(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "indicatorA", Goal: 1, ScoringLogic: "5=Max;0=Min"},
		{Name: "indicatorB", Goal: 9, ScoringLogic: "2=Max;0=Min"},
	}
	rawScores := map[string]float64{
		"indicatorA": 5,
		"indicatorB": 2,
	}

	card := scoring.Aggregate(rawScores, catalog)

	rq.Equal(10.0, card.PerGoal[1])
	for goal := 2; goal <= entity.GoalMax; goal++ {
		rq.Zero(card.PerGoal[goal])
	}
	// (5+2)/(5+2)*10: the goal-9 indicator still feeds the grand total.
	rq.Equal(10.0, card.Overall)
}

func TestAggregateMissingScoresCountAsZero(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "scored", Goal: 2, ScoringLogic: "4=Full;0=None"},
		{Name: "unscored", Goal: 2, ScoringLogic: "4=Full;0=None"},
	}

	card := scoring.Aggregate(map[string]float64{"scored": 4}, catalog)

	// 4 out of 8: the unscored indicator stays in the denominator.
	rq.Equal(5.0, card.PerGoal[2])
	rq.Equal(5.0, card.Overall)
}

func TestAggregateRounding(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "indicatorA", Goal: 1, ScoringLogic: "3=Full;0=None"},
	}

	card := scoring.Aggregate(map[string]float64{"indicatorA": 1}, catalog)

	rq.Equal(3.33, card.PerGoal[1])
	rq.Equal(3.33, card.Overall)
}

func TestAggregateMalformedLogicFallsBackToDefaultMax(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "indicatorA", Goal: 4, ScoringLogic: "garbage;nodigitshere"},
	}

	card := scoring.Aggregate(map[string]float64{"indicatorA": 5}, catalog)

	rq.Equal(10.0, card.PerGoal[4])
	rq.Equal(10.0, card.Overall)
}

func TestAggregateOutOfRangeScoreNotClamped(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "indicatorA", Goal: 1, ScoringLogic: "2=Max;0=Min"},
	}

	card := scoring.Aggregate(map[string]float64{"indicatorA": 4}, catalog)

	rq.Equal(20.0, card.PerGoal[1])
	rq.Equal(20.0, card.Overall)
}

func TestAggregateIdempotent(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "a", Goal: 1, ScoringLogic: "3=Full;1=Partial;0=None"},
		{Name: "b", Goal: 5, ScoringLogic: "2=Yes;0=No"},
		{Name: "c", Goal: 8, ScoringLogic: ""},
	}
	rawScores := map[string]float64{"a": 2, "b": 1, "c": 3}

	first := scoring.Aggregate(rawScores, catalog)
	second := scoring.Aggregate(rawScores, catalog)

	rq.Equal(first, second)
}

func TestAggregateMonotonic(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "a", Goal: 2, ScoringLogic: "5=Max;0=Min"},
		{Name: "b", Goal: 2, ScoringLogic: "5=Max;0=Min"},
	}

	previous := scoring.Aggregate(map[string]float64{"a": 0, "b": 3}, catalog)

	for raw := 1; raw <= 5; raw++ {
		current := scoring.Aggregate(map[string]float64{"a": float64(raw), "b": 3}, catalog)
		rq.GreaterOrEqual(current.PerGoal[2], previous.PerGoal[2])
		rq.GreaterOrEqual(current.Overall, previous.Overall)
		previous = current
	}
}

func TestAggregateDoesNotMutateInputs(t *testing.T) {
	rq := require.New(t)

	catalog := []entity.IndicatorDefinition{
		{Name: "a", Goal: 1, ScoringLogic: "2=Yes;0=No"},
		{Name: "missing", Goal: 1, ScoringLogic: "2=Yes;0=No"},
	}
	rawScores := map[string]float64{"a": 2}

	_ = scoring.Aggregate(rawScores, catalog)

	rq.Equal(map[string]float64{"a": 2}, rawScores)
	rq.Equal("a", catalog[0].Name)
}
