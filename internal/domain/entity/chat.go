package entity

// Chat message roles accepted from the widget.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of the feedback-bot conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatContext carries the per-request context the widget sends alongside the
// conversation so the relay can tailor the system prompt.
type ChatContext struct {
	Route         string `json:"route,omitempty"`
	IndicatorName string `json:"indicator_name,omitempty"`
	Goal          string `json:"goal,omitempty"`
	ExtraContext  string `json:"extra_context,omitempty"`
	AskedFollowup bool   `json:"asked_followup,omitempty"`
}
