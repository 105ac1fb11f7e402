package server

import (
	"fmt"
	"net/http"

	"dri_index/pkg/logx"
)

const (
	badgeWidth     = 120
	badgeHeight    = 30
	badgeBarColor  = "#ffdd00"
	badgeScoreSpan = 10.0
)

type BadgeServer struct {
	companyService companyService
}

func NewBadgeServer(companyService companyService) BadgeServer {
	return BadgeServer{
		companyService: companyService,
	}
}

// getBadge renders the embeddable score badge. The bar fills proportionally
// to the overall score on the 0..10 scale.
func (s BadgeServer) getBadge(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := companyID(r)
	if err != nil {
		return err
	}

	rated, err := s.companyService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("companyService.Get: %w", err)
	}

	score := rated.Scorecard.Overall
	barWidth := score / badgeScoreSpan * badgeWidth

	svg := fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+
			`<rect width="100%%" height="100%%" fill="black"/>`+
			`<rect x="0" y="0" width="%.1f" height="100%%" fill="%s"/>`+
			`<text x="50%%" y="50%%" font-family="Arial" font-size="14" fill="white" text-anchor="middle" alignment-baseline="middle">Score: %.1f</text>`+
			`</svg>`,
		badgeWidth, badgeHeight, barWidth, badgeBarColor, score,
	)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(svg)); err != nil {
		logger(ctx).Error("badge write", logx.Error(err))
	}

	return nil
}
