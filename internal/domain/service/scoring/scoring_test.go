package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dri_index/internal/domain/entity"
	"dri_index/internal/domain/service/scoring"
)

func TestMaxScore(t *testing.T) {
	testCases := []struct {
		name  string
		logic string
		want  int
	}{
		{
			name:  "three options",
			logic: "3=Full; 1=Partial; 0=None",
			want:  3,
		},
		{
			name:  "unordered options",
			logic: "0=No policy; 1=Basic policy; 2=Comprehensive policy with governance",
			want:  2,
		},
		{
			name:  "noise around digits",
			logic: " pts 4 =Great; 2=OK",
			want:  4,
		},
		{
			name:  "digits split by non-digits collapse into one number",
			logic: "1a0=Label",
			want:  10,
		},
		{
			name:  "label may contain equals sign",
			logic: "2=a=b; 1=c",
			want:  2,
		},
		{
			name:  "empty string falls back to default",
			logic: "",
			want:  scoring.DefaultMaxScore,
		},
		{
			name:  "no digits anywhere falls back to default",
			logic: "garbage;nodigitshere",
			want:  scoring.DefaultMaxScore,
		},
		{
			name:  "only separators",
			logic: " ; ; ",
			want:  scoring.DefaultMaxScore,
		},
		{
			name:  "zero is a valid maximum",
			logic: "0=Nothing",
			want:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, scoring.MaxScore(tc.logic))
		})
	}
}

func TestOptions(t *testing.T) {
	rq := require.New(t)

	options := scoring.Options("3=Full; 1=Partial; 0=None")

	rq.Len(options, 3)
	rq.Equal(3, *options[0].Value)
	rq.Equal("Full", options[0].Label)
	rq.Equal(1, *options[1].Value)
	rq.Equal("Partial", options[1].Label)
	rq.Equal(0, *options[2].Value)
	rq.Equal("None", options[2].Label)
}

func TestOptionsNonNumericValue(t *testing.T) {
	rq := require.New(t)

	options := scoring.Options("yes=Applies; no=Does not apply")

	rq.Len(options, 2)
	rq.Nil(options[0].Value)
	rq.Equal("yes", options[0].Raw)
	rq.Equal("Applies", options[0].Label)
	rq.Nil(options[1].Value)
	rq.Equal("no", options[1].Raw)
}

func TestOptionsLabelKeepsLaterEquals(t *testing.T) {
	rq := require.New(t)

	options := scoring.Options("2=a=b")

	rq.Len(options, 1)
	rq.Equal(2, *options[0].Value)
	rq.Equal("a=b", options[0].Label)
}

func TestOptionsEmpty(t *testing.T) {
	require.Empty(t, scoring.Options(""))
}

func TestParseLegend(t *testing.T) {
	testCases := []struct {
		name   string
		legend string
		want   []entity.LegendEntry
	}{
		{
			name:   "en dash segments",
			legend: "A – desc1; B – desc2",
			want: []entity.LegendEntry{
				{Title: "A", Description: "desc1"},
				{Title: "B", Description: "desc2"},
			},
		},
		{
			name:   "spaced hyphen fallback",
			legend: "No plan - nothing documented",
			want: []entity.LegendEntry{
				{Title: "No plan", Description: "nothing documented"},
			},
		},
		{
			name:   "recurring separator stays in description",
			legend: "A – x – y",
			want: []entity.LegendEntry{
				{Title: "A", Description: "x – y"},
			},
		},
		{
			name:   "title only segment",
			legend: "Comprehensive",
			want: []entity.LegendEntry{
				{Title: "Comprehensive"},
			},
		},
		{
			name:   "empty input",
			legend: "",
			want:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, scoring.ParseLegend(tc.legend))
		})
	}
}
