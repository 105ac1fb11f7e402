package entity

import "time"

// Feedback types as stored in the feedback table.
const (
	FeedbackTypeGeneral        = "general"
	FeedbackTypeChatTranscript = "chat_transcript"
)

// Feedback is one user feedback record, either submitted explicitly through
// the feedback widget or logged as a chat transcript.
type Feedback struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	Route            string    `json:"route"`
	IndicatorName    string    `json:"indicator_name,omitempty"`
	Goal             int       `json:"goal,omitempty"`
	FeedbackType     string    `json:"feedback_type"`
	Message          string    `json:"message"`
	AssistantMessage string    `json:"assistant_message,omitempty"`
	Consent          bool      `json:"consent"`
	Device           string    `json:"device,omitempty"`
	ViewportWidth    int       `json:"viewport_w,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
