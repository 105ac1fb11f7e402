package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/rs/xid"

	"dri_index/internal/domain/entity"
	"dri_index/internal/infrastructure/persistence"
	"dri_index/pkg/errcodes"
	"dri_index/pkg/httpx/reply"
	"dri_index/pkg/httpx/req"
	"dri_index/pkg/lox"
	"dri_index/pkg/rest"
)

const (
	feedbackDefaultLimit = 100
	feedbackMaxLimit     = 1000
)

type feedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	List(ctx context.Context, filter persistence.FeedbackFilter) ([]*entity.Feedback, error)
}

type FeedbackServer struct {
	feedbackRepo feedbackRepository
}

func NewFeedbackServer(feedbackRepo feedbackRepository) FeedbackServer {
	return FeedbackServer{
		feedbackRepo: feedbackRepo,
	}
}

func (s FeedbackServer) postFeedback(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.FeedbackRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	feedback := &entity.Feedback{
		ID:            xid.New().String(),
		SessionID:     request.SessionID,
		Route:         request.Route,
		IndicatorName: request.IndicatorName,
		Goal:          request.Goal,
		FeedbackType:  entity.FeedbackTypeGeneral,
		Message:       request.Message,
		Consent:       request.Consent,
		Device:        request.Device,
		ViewportWidth: request.ViewportWidth,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return fmt.Errorf("feedbackRepo.Create: %w", err)
	}

	reply.Created(w)

	return nil
}

func (s FeedbackServer) getFeedback(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := feedbackLimit(r.URL.Query().Get("limit"))
	if err != nil {
		return err
	}

	items, err := s.feedbackRepo.List(ctx, persistence.FeedbackFilter{
		Route:         r.URL.Query().Get("route"),
		IndicatorName: r.URL.Query().Get("indicator_name"),
		Limit:         limit,
	})
	if err != nil {
		return fmt.Errorf("feedbackRepo.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(items, newRESTFeedback))

	return nil
}

func feedbackLimit(raw string) (int, error) {
	if raw == "" {
		return feedbackDefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > feedbackMaxLimit {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid limit %q", raw),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(fmt.Sprintf("Limit must be between 1 and %d", feedbackMaxLimit)),
		)
	}

	return limit, nil
}
