package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"dri_index/internal/domain/entity"
)

func newUpstream(t *testing.T, capture *openai.ChatCompletionRequest, reply string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(capture))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: reply}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestReplySuccess(t *testing.T) {
	rq := require.New(t)

	var captured openai.ChatCompletionRequest
	server := newUpstream(t, &captured, "  Happy to help!  ")
	defer server.Close()

	relay := NewRelay(Config{APIKey: "test-key", BaseURL: server.URL})

	reply, err := relay.Reply(context.Background(), Request{
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleUser, Content: "How does scoring work?"},
		},
		Context: entity.ChatContext{Route: "/company/42"},
	})
	rq.NoError(err)
	rq.Equal("Happy to help!", reply)

	rq.Equal(openai.GPT4oMini, captured.Model)
	rq.Equal(defaultMaxTokens, captured.MaxTokens)

	// System prompt first, context line present, user message last.
	rq.Equal(openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	rq.Contains(captured.Messages[0].Content, "Digital Responsibility Index")
	rq.Contains(messagesText(captured), "route: /company/42")
	last := captured.Messages[len(captured.Messages)-1]
	rq.Equal(openai.ChatMessageRoleUser, last.Role)
	rq.Equal("How does scoring work?", last.Content)
}

func TestReplyInjectsGoalSummary(t *testing.T) {
	rq := require.New(t)

	var captured openai.ChatCompletionRequest
	server := newUpstream(t, &captured, "ok")
	defer server.Close()

	relay := NewRelay(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := relay.Reply(context.Background(), Request{
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleUser, Content: "Tell me about DRG 3"},
		},
		Context: entity.ChatContext{Route: "/"},
	})
	rq.NoError(err)
	rq.Contains(messagesText(captured), goalSummaries["3"])
}

func TestReplyClampsOverrides(t *testing.T) {
	rq := require.New(t)

	var captured openai.ChatCompletionRequest
	server := newUpstream(t, &captured, "ok")
	defer server.Close()

	relay := NewRelay(Config{APIKey: "test-key", BaseURL: server.URL})

	temperature := float32(7)
	_, err := relay.Reply(context.Background(), Request{
		Messages:    []entity.ChatMessage{{Role: entity.ChatRoleUser, Content: "hi"}},
		MaxTokens:   99999,
		Temperature: &temperature,
	})
	rq.NoError(err)
	rq.Equal(maxMaxTokens, captured.MaxTokens)
	rq.Equal(float32(1), captured.Temperature)
}

func TestReplyTruncatesTail(t *testing.T) {
	rq := require.New(t)

	var captured openai.ChatCompletionRequest
	server := newUpstream(t, &captured, "ok")
	defer server.Close()

	relay := NewRelay(Config{APIKey: "test-key", BaseURL: server.URL})

	var messages []entity.ChatMessage
	for i := 0; i < 12; i++ {
		messages = append(messages, entity.ChatMessage{Role: entity.ChatRoleUser, Content: "m"})
	}

	_, err := relay.Reply(context.Background(), Request{Messages: messages})
	rq.NoError(err)

	var userTurns int
	for _, m := range captured.Messages {
		if m.Role == openai.ChatMessageRoleUser {
			userTurns++
		}
	}
	rq.Equal(messageTailSize, userTurns)
}

func TestReplyNotConfigured(t *testing.T) {
	rq := require.New(t)

	relay := NewRelay(Config{})

	_, err := relay.Reply(context.Background(), Request{})
	rq.Error(err)
}

func TestReplyUpstreamFailure(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	relay := NewRelay(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := relay.Reply(context.Background(), Request{
		Messages: []entity.ChatMessage{{Role: entity.ChatRoleUser, Content: "hi"}},
	})
	rq.Error(err)
}

func TestDetectGoalMention(t *testing.T) {
	testCases := []struct {
		message string
		goal    string
		found   bool
	}{
		{"what is DRG 5 about?", "5", true},
		{"drg#2", "2", true},
		{"explain digital literacy please", "1", true},
		{"how is privacy scored", "3", true},
		{"nothing relevant here", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		goal, found := detectGoalMention(tc.message)
		require.Equal(t, tc.found, found, tc.message)
		require.Equal(t, tc.goal, goal, tc.message)
	}
}

func messagesText(req openai.ChatCompletionRequest) string {
	var b strings.Builder
	for _, m := range req.Messages {
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
