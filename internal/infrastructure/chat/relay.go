// Package chat relays feedback-widget conversations to the OpenAI
// chat-completions API. The relay is a pass-through with prompt scaffolding
// and logging; it holds no conversation state.
package chat

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"dri_index/internal/domain/entity"
	"dri_index/pkg/httpx"
	"dri_index/pkg/logx"
)

// FallbackReply is returned whenever the upstream call cannot be made or
// fails; the widget must never surface an error to the user.
const FallbackReply = "Thanks for sharing. Could you add one concrete example or suggestion?"

const (
	defaultModel       = openai.GPT4oMini
	defaultTemperature = 0.2
	defaultMaxTokens   = 256

	minMaxTokens = 32
	maxMaxTokens = 512

	messageTailSize    = 8
	maxMessageLen      = 2000
	maxSystemPromptLen = 2000
	maxExtraContextLen = 1200
)

type Config struct {
	APIKey       string
	BaseURL      string
	Model        string
	Temperature  float32
	MaxTokens    int
	SystemPrompt string
}

// Configured reports whether the relay can reach the upstream at all.
func (c Config) Configured() bool {
	return c.APIKey != ""
}

// Request is one relay invocation: the conversation tail plus the widget
// context and optional bounded overrides.
type Request struct {
	Messages     []entity.ChatMessage
	Context      entity.ChatContext
	Model        string
	MaxTokens    int
	Temperature  *float32
	SystemPrompt string
}

type Relay struct {
	client *openai.Client
	config Config
}

func NewRelay(config Config) *Relay {
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}
	if config.SystemPrompt == "" {
		config.SystemPrompt = defaultSystemPrompt
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	clientConfig.HTTPClient = &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(2048),
		),
	}

	return &Relay{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Reply sends the scaffolded conversation upstream and returns the
// assistant's answer. Callers substitute FallbackReply on any error; the
// relay itself never retries.
func (r *Relay) Reply(ctx context.Context, req Request) (string, error) {
	if !r.config.Configured() {
		return "", fmt.Errorf("chat relay not configured")
	}

	model := req.Model
	if model == "" {
		model = r.config.Model
	}

	maxTokens := clampInt(req.MaxTokens, r.config.MaxTokens, minMaxTokens, maxMaxTokens)

	temperature := r.config.Temperature
	if req.Temperature != nil {
		temperature = clampFloat(*req.Temperature, 0, 1)
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    r.buildMessages(req),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("client.CreateChatCompletion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in upstream response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content in upstream response")
	}

	return content, nil
}

func (r *Relay) buildMessages(req Request) []openai.ChatCompletionMessage {
	systemPrompt := r.config.SystemPrompt
	if req.SystemPrompt != "" {
		systemPrompt = truncate(req.SystemPrompt, maxSystemPromptLen)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}

	system := func(content string) {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: content,
		})
	}

	chatCtx := req.Context

	if chatCtx.IndicatorName != "" {
		system("Indicator context is provided to help tailor your reply. " +
			"Do not restrict or reprimand users; accept feedback about any part of the evaluation.")
	}

	goal := strings.TrimSpace(chatCtx.Goal)
	if summary, ok := goalSummaries[goal]; ok {
		system("DRG summary: " + summary)
	}

	contextParts := []string{"route: " + chatCtx.Route}
	if chatCtx.IndicatorName != "" {
		contextParts = append(contextParts, "indicator: "+chatCtx.IndicatorName)
	}
	if goal != "" {
		contextParts = append(contextParts, "drg: "+goal)
	}
	system("Context - " + strings.Join(contextParts, "; "))

	if chatCtx.ExtraContext != "" {
		system(truncate(chatCtx.ExtraContext, maxExtraContextLen))
	}

	if chatCtx.AskedFollowup {
		system("Do not ask any more follow-ups. Respond concisely.")
	}

	tail := req.Messages
	if len(tail) > messageTailSize {
		tail = tail[len(tail)-messageTailSize:]
	}

	// If the latest user message mentions a goal by number or by name,
	// inject its summary so the model can answer without guessing.
	if mentioned, ok := detectGoalMention(lastUserMessage(tail)); ok {
		if goal == "" || goal != mentioned {
			system(fmt.Sprintf("DRG%s summary: %s", mentioned, goalSummaries[mentioned]))
		}
	}

	for _, m := range tail {
		role := openai.ChatMessageRoleAssistant
		if m.Role == entity.ChatRoleUser {
			role = openai.ChatMessageRoleUser
		}

		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: truncate(m.Content, maxMessageLen),
		})
	}

	return messages
}

func lastUserMessage(messages []entity.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == entity.ChatRoleUser {
			return messages[i].Content
		}
	}
	return ""
}

func clampInt(v, fallback, min, max int) int {
	if v == 0 {
		v = fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
