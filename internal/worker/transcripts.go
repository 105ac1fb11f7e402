package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/xid"

	"dri_index/internal/domain/entity"
)

// TypeChatTranscript is the asynq task type for persisting one chat exchange
// as a feedback record.
const TypeChatTranscript = "feedback:transcript"

const transcriptMaxRetry = 3

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// TranscriptPayload is the task body: one user turn and the assistant reply,
// with the widget context it happened in.
type TranscriptPayload struct {
	SessionID      string    `json:"session_id"`
	Route          string    `json:"route"`
	IndicatorName  string    `json:"indicator_name,omitempty"`
	Goal           int       `json:"goal,omitempty"`
	UserMessage    string    `json:"user_message"`
	AssistantReply string    `json:"assistant_reply"`
	Device         string    `json:"device,omitempty"`
	ViewportWidth  int       `json:"viewport_w,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// TranscriptEnqueuer hands transcripts to the queue so the HTTP handler can
// answer without waiting for the insert.
type TranscriptEnqueuer struct {
	client *asynq.Client
}

func NewTranscriptEnqueuer(client *asynq.Client) *TranscriptEnqueuer {
	return &TranscriptEnqueuer{client: client}
}

func (e *TranscriptEnqueuer) Enqueue(ctx context.Context, payload TranscriptPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	task := asynq.NewTask(TypeChatTranscript, body, asynq.MaxRetry(transcriptMaxRetry))

	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	return nil
}

type FeedbackWriter interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
}

// TranscriptWriter is the asynq handler side: it turns a queued transcript
// into a feedback row.
type TranscriptWriter struct {
	feedback FeedbackWriter
}

func NewTranscriptWriter(feedback FeedbackWriter) *TranscriptWriter {
	return &TranscriptWriter{feedback: feedback}
}

func (w *TranscriptWriter) Handle(ctx context.Context, task *asynq.Task) error {
	var payload TranscriptPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	feedback := &entity.Feedback{
		ID:               xid.New().String(),
		SessionID:        payload.SessionID,
		Route:            payload.Route,
		IndicatorName:    payload.IndicatorName,
		Goal:             payload.Goal,
		FeedbackType:     entity.FeedbackTypeChatTranscript,
		Message:          payload.UserMessage,
		AssistantMessage: payload.AssistantReply,
		Consent:          true,
		Device:           payload.Device,
		ViewportWidth:    payload.ViewportWidth,
		CreatedAt:        payload.OccurredAt,
	}

	if err := w.feedback.Create(ctx, feedback); err != nil {
		return fmt.Errorf("feedback.Create: %w", err)
	}

	logger(ctx).Info("chat transcript stored", "route", payload.Route, "session_id", payload.SessionID)

	return nil
}
