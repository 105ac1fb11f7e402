package persistence

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"dri_index/internal/domain"
	"dri_index/internal/domain/entity"
	"dri_index/pkg/errcodes"
)

type FeedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// FeedbackFilter narrows List results. Zero values mean "no filter"; Limit
// is clamped by the caller.
type FeedbackFilter struct {
	Route         string
	IndicatorName string
	Limit         int
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (
			id, session_id, route, indicator_name, goal, feedback_type,
			message, assistant_message, consent, device, viewport_w, created_at
		) VALUES (
			:id, :session_id, :route, :indicator_name, :goal, :feedback_type,
			:message, :assistant_message, :consent, :device, :viewport_w, :created_at
		)`

	params := map[string]any{
		"id":                feedback.ID,
		"session_id":        feedback.SessionID,
		"route":             feedback.Route,
		"indicator_name":    nullString(feedback.IndicatorName),
		"goal":              nullInt(feedback.Goal),
		"feedback_type":     feedback.FeedbackType,
		"message":           feedback.Message,
		"assistant_message": nullString(feedback.AssistantMessage),
		"consent":           feedback.Consent,
		"device":            nullString(feedback.Device),
		"viewport_w":        nullInt(feedback.ViewportWidth),
		"created_at":        feedback.CreatedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, params); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert feedback")
	}
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, filter FeedbackFilter) ([]*entity.Feedback, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Route != "" {
		args = append(args, filter.Route)
		conditions = append(conditions, "route = ?")
	}
	if filter.IndicatorName != "" {
		args = append(args, filter.IndicatorName)
		conditions = append(conditions, "indicator_name = ?")
	}

	query := `
		SELECT id, session_id, route, indicator_name, goal, feedback_type,
		       message, assistant_message, consent, device, viewport_w, created_at
		FROM feedback`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, filter.Limit)

	var schemas []feedbackSchema
	if err := r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list feedback")
	}

	items := make([]*entity.Feedback, 0, len(schemas))
	for _, s := range schemas {
		items = append(items, s.toDomain())
	}

	return items, nil
}
