// Package rest holds the wire types of the public HTTP API.
package rest

// Error is the error envelope returned by every endpoint.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string

// Company is a company record with its derived ratings attached.
type Company struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Website      string             `json:"website,omitempty"`
	Scores       map[string]float64 `json:"scores"`
	PerGoal      map[string]float64 `json:"perGoal"`
	OverallScore float64            `json:"overallScore"`
	CreatedAt    string             `json:"createdAt,omitempty"`
	UpdatedAt    string             `json:"updatedAt,omitempty"`
}

// CompanyRequest is the body of both create and full-replacement update.
type CompanyRequest struct {
	Name    string             `json:"name" validate:"required,min=1,max=200"`
	Website string             `json:"website" validate:"omitempty,max=500"`
	Scores  map[string]float64 `json:"scores"`
}

// Indicator is one catalog entry enriched with the parsed scoring metadata.
type Indicator struct {
	Name         string        `json:"name"`
	Goal         int           `json:"goal"`
	Question     string        `json:"question,omitempty"`
	Rationale    string        `json:"rationale,omitempty"`
	ScoringLogic string        `json:"scoringLogic"`
	MaxScore     int           `json:"maxScore"`
	Options      []ScoreOption `json:"options"`
	Legend       []LegendEntry `json:"legend"`
}

type ScoreOption struct {
	Value *int   `json:"value"`
	Raw   string `json:"raw,omitempty"`
	Label string `json:"label"`
}

type LegendEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ChatRequest carries the conversation tail and the widget context.
type ChatRequest struct {
	Messages     []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Context      ChatContext   `json:"context"`
	Model        string        `json:"model" validate:"omitempty,max=100"`
	MaxTokens    int           `json:"max_tokens" validate:"omitempty,min=0"`
	Temperature  *float32      `json:"temperature"`
	SystemPrompt string        `json:"system_prompt" validate:"omitempty,max=4000"`
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatContext struct {
	Route         string `json:"route"`
	IndicatorName string `json:"indicator_name"`
	Goal          string `json:"goal"`
	ExtraContext  string `json:"extra_context"`
	AskedFollowup bool   `json:"asked_followup"`
	SessionID     string `json:"session_id"`
	Device        string `json:"device"`
	ViewportWidth int    `json:"viewport_w"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// FeedbackRequest is an explicit feedback submission from the widget.
type FeedbackRequest struct {
	SessionID     string `json:"session_id" validate:"required,max=100"`
	Route         string `json:"route" validate:"required,max=500"`
	IndicatorName string `json:"indicator_name" validate:"omitempty,max=300"`
	Goal          int    `json:"goal" validate:"omitempty,min=1,max=7"`
	Message       string `json:"message" validate:"required,min=1,max=4000"`
	Consent       bool   `json:"consent"`
	Device        string `json:"device" validate:"omitempty,max=100"`
	ViewportWidth int    `json:"viewport_w" validate:"omitempty,min=0"`
}

type Feedback struct {
	ID               string `json:"id"`
	SessionID        string `json:"session_id"`
	Route            string `json:"route"`
	IndicatorName    string `json:"indicator_name,omitempty"`
	Goal             int    `json:"goal,omitempty"`
	FeedbackType     string `json:"feedback_type"`
	Message          string `json:"message"`
	AssistantMessage string `json:"assistant_message,omitempty"`
	Consent          bool   `json:"consent"`
	Device           string `json:"device,omitempty"`
	ViewportWidth    int    `json:"viewport_w,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// Health reports whether the optional collaborators are configured.
type Health struct {
	OK              bool `json:"ok"`
	ChatConfigured  bool `json:"chat_configured"`
	StoreConfigured bool `json:"store_configured"`
}
