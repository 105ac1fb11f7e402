package persistence

import (
	"database/sql"
	"encoding/json"
	"time"

	"dri_index/internal/domain/entity"
)

// companySchema maps a row of the companies table. Scores are stored as a
// JSONB object keyed by indicator name; derived ratings are never stored
// here, they are recomputed on read.
type companySchema struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Website   string    `db:"website"`
	Scores    []byte    `db:"scores"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *companySchema) toDomain() (*entity.Company, error) {
	scores := map[string]float64{}
	if len(s.Scores) > 0 {
		if err := json.Unmarshal(s.Scores, &scores); err != nil {
			return nil, err
		}
	}

	return &entity.Company{
		ID:        s.ID,
		Name:      s.Name,
		Website:   s.Website,
		Scores:    scores,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

// feedbackSchema maps a row of the feedback table.
type feedbackSchema struct {
	ID               string         `db:"id"`
	SessionID        string         `db:"session_id"`
	Route            string         `db:"route"`
	IndicatorName    sql.NullString `db:"indicator_name"`
	Goal             sql.NullInt64  `db:"goal"`
	FeedbackType     string         `db:"feedback_type"`
	Message          string         `db:"message"`
	AssistantMessage sql.NullString `db:"assistant_message"`
	Consent          bool           `db:"consent"`
	Device           sql.NullString `db:"device"`
	ViewportWidth    sql.NullInt64  `db:"viewport_w"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (s *feedbackSchema) toDomain() *entity.Feedback {
	return &entity.Feedback{
		ID:               s.ID,
		SessionID:        s.SessionID,
		Route:            s.Route,
		IndicatorName:    s.IndicatorName.String,
		Goal:             int(s.Goal.Int64),
		FeedbackType:     s.FeedbackType,
		Message:          s.Message,
		AssistantMessage: s.AssistantMessage.String,
		Consent:          s.Consent,
		Device:           s.Device.String,
		ViewportWidth:    int(s.ViewportWidth.Int64),
		CreatedAt:        s.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}
