package catalogcsv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dri_index/internal/infrastructure/catalogcsv"
)

const testCSV = `Criterion/Metric Name,Question,Rationale,Scoring Logic,Legend,DRG Short Code
Incident response plan,Is there a plan?,Plans matter.,0=No plan; 2=Tested plan,No plan – Tested plan,2
Mystery indicator,,,1=Yes;0=No,,x
,,ignored row without a name,,,3
`

func TestParse(t *testing.T) {
	rq := require.New(t)

	definitions, err := catalogcsv.Parse(strings.NewReader(testCSV))
	rq.NoError(err)
	rq.Len(definitions, 2)

	rq.Equal("Incident response plan", definitions[0].Name)
	rq.Equal(2, definitions[0].Goal)
	rq.Equal("0=No plan; 2=Tested plan", definitions[0].ScoringLogic)
	rq.Equal("Is there a plan?", definitions[0].Question)

	// Non-numeric goal code lands outside the valid range.
	rq.Equal("Mystery indicator", definitions[1].Name)
	rq.Equal(0, definitions[1].Goal)
	rq.False(definitions[1].ValidGoal())
}

func TestParseMissingColumns(t *testing.T) {
	rq := require.New(t)

	definitions, err := catalogcsv.Parse(strings.NewReader("Criterion/Metric Name\nOnly name\n"))
	rq.NoError(err)
	rq.Len(definitions, 1)
	rq.Equal("Only name", definitions[0].Name)
	rq.Empty(definitions[0].ScoringLogic)
}

func TestLoadFirstFallsBackToSeed(t *testing.T) {
	rq := require.New(t)

	definitions, err := catalogcsv.LoadFirst("does-not-exist.csv")
	rq.NoError(err)
	rq.Equal(catalogcsv.Seed(), definitions)
}
