package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dri_index/internal/domain/entity"
	"dri_index/internal/infrastructure/chat"
	"dri_index/internal/worker"
	"dri_index/pkg/contextx"
	"dri_index/pkg/httpx/reply"
	"dri_index/pkg/httpx/req"
	"dri_index/pkg/logx"
	"dri_index/pkg/rest"
)

type chatRelay interface {
	Reply(ctx context.Context, request chat.Request) (string, error)
}

type transcriptEnqueuer interface {
	Enqueue(ctx context.Context, payload worker.TranscriptPayload) error
}

type ChatServer struct {
	relay       chatRelay
	transcripts transcriptEnqueuer
}

func NewChatServer(relay chatRelay, transcripts transcriptEnqueuer) ChatServer {
	return ChatServer{
		relay:       relay,
		transcripts: transcripts,
	}
}

// postChat relays the conversation upstream. The widget always gets a 200
// with a reply; upstream failures degrade to the canned fallback.
func (s ChatServer) postChat(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ChatRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if request.Context.SessionID != "" {
		ctx = contextx.WithSessionID(ctx, contextx.SessionID(request.Context.SessionID))
	}

	relayRequest := newRelayRequest(request)

	answer, err := s.relay.Reply(ctx, relayRequest)
	if err != nil {
		logger(ctx).Warn("chat relay failed, serving fallback", logx.Error(err))
		chatReplies.WithLabelValues(chatOutcomeFallback).Inc()
		answer = chat.FallbackReply
	} else {
		chatReplies.WithLabelValues(chatOutcomeOK).Inc()
	}

	s.logTranscript(ctx, request, answer)

	reply.JSON(ctx, w, http.StatusOK, rest.ChatResponse{Reply: answer})

	return nil
}

func (s ChatServer) logTranscript(ctx context.Context, request rest.ChatRequest, answer string) {
	if s.transcripts == nil {
		return
	}

	userMessage := ""
	for i := len(request.Messages) - 1; i >= 0; i-- {
		if request.Messages[i].Role == entity.ChatRoleUser {
			userMessage = request.Messages[i].Content
			break
		}
	}
	if userMessage == "" {
		return
	}

	goal, _ := strconv.Atoi(request.Context.Goal)

	payload := worker.TranscriptPayload{
		SessionID:      request.Context.SessionID,
		Route:          request.Context.Route,
		IndicatorName:  request.Context.IndicatorName,
		Goal:           goal,
		UserMessage:    userMessage,
		AssistantReply: answer,
		Device:         request.Context.Device,
		ViewportWidth:  request.Context.ViewportWidth,
	}

	if err := s.transcripts.Enqueue(ctx, payload); err != nil {
		sessionID, _ := contextx.SessionIDFromContext(ctx)
		logger(ctx).Warn(
			"transcript enqueue failed",
			slog.String(logx.FieldSessionID, sessionID.String()),
			logx.Error(err),
		)
	}
}

func newRelayRequest(request rest.ChatRequest) chat.Request {
	messages := make([]entity.ChatMessage, 0, len(request.Messages))
	for _, m := range request.Messages {
		messages = append(messages, entity.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return chat.Request{
		Messages: messages,
		Context: entity.ChatContext{
			Route:         request.Context.Route,
			IndicatorName: request.Context.IndicatorName,
			Goal:          request.Context.Goal,
			ExtraContext:  request.Context.ExtraContext,
			AskedFollowup: request.Context.AskedFollowup,
		},
		Model:        request.Model,
		MaxTokens:    request.MaxTokens,
		Temperature:  request.Temperature,
		SystemPrompt: request.SystemPrompt,
	}
}
