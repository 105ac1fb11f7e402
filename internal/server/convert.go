package server

import (
	"strconv"
	"time"

	"dri_index/internal/domain/entity"
	"dri_index/internal/domain/service/company"
	"dri_index/internal/domain/service/scoring"
	"dri_index/pkg/lox"
	"dri_index/pkg/rest"
)

func newRESTCompany(rated company.Rated) rest.Company {
	perGoal := make(map[string]float64, len(rated.Scorecard.PerGoal))
	for goal, score := range rated.Scorecard.PerGoal {
		perGoal[strconv.Itoa(goal)] = score
	}

	return rest.Company{
		ID:           rated.Company.ID,
		Name:         rated.Company.Name,
		Website:      rated.Company.Website,
		Scores:       rated.Company.Scores,
		PerGoal:      perGoal,
		OverallScore: rated.Scorecard.Overall,
		CreatedAt:    formatTime(rated.Company.CreatedAt),
		UpdatedAt:    formatTime(rated.Company.UpdatedAt),
	}
}

func newRESTIndicator(definition entity.IndicatorDefinition) rest.Indicator {
	return rest.Indicator{
		Name:         definition.Name,
		Goal:         definition.Goal,
		Question:     definition.Question,
		Rationale:    definition.Rationale,
		ScoringLogic: definition.ScoringLogic,
		MaxScore:     scoring.MaxScore(definition.ScoringLogic),
		Options:      lox.Map(scoring.Options(definition.ScoringLogic), newRESTScoreOption),
		Legend:       lox.Map(scoring.ParseLegend(definition.Legend), newRESTLegendEntry),
	}
}

func newRESTScoreOption(option entity.ScoreOption) rest.ScoreOption {
	return rest.ScoreOption{
		Value: option.Value,
		Raw:   option.Raw,
		Label: option.Label,
	}
}

func newRESTLegendEntry(entry entity.LegendEntry) rest.LegendEntry {
	return rest.LegendEntry{
		Title:       entry.Title,
		Description: entry.Description,
	}
}

func newRESTFeedback(feedback *entity.Feedback) rest.Feedback {
	return rest.Feedback{
		ID:               feedback.ID,
		SessionID:        feedback.SessionID,
		Route:            feedback.Route,
		IndicatorName:    feedback.IndicatorName,
		Goal:             feedback.Goal,
		FeedbackType:     feedback.FeedbackType,
		Message:          feedback.Message,
		AssistantMessage: feedback.AssistantMessage,
		Consent:          feedback.Consent,
		Device:           feedback.Device,
		ViewportWidth:    feedback.ViewportWidth,
		CreatedAt:        formatTime(feedback.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
