package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"dri_index/internal/domain/service/company"
	"dri_index/pkg/errcodes"
	"dri_index/pkg/httpx/reply"
	"dri_index/pkg/httpx/req"
	"dri_index/pkg/lox"
	"dri_index/pkg/rest"
)

type companyService interface {
	Create(ctx context.Context, name, website string, scores map[string]float64) (company.Rated, error)
	Get(ctx context.Context, id string) (company.Rated, error)
	Leaderboard(ctx context.Context) ([]company.Rated, error)
	Replace(ctx context.Context, id, name, website string, scores map[string]float64) (company.Rated, error)
	Delete(ctx context.Context, id string) error
}

type CompanyServer struct {
	companyService companyService
}

func NewCompanyServer(companyService companyService) CompanyServer {
	return CompanyServer{
		companyService: companyService,
	}
}

func (s CompanyServer) getCompanies(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	board, err := s.companyService.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("companyService.Leaderboard: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(board, newRESTCompany))

	return nil
}

func (s CompanyServer) postCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CompanyRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := validateScores(request.Scores); err != nil {
		return err
	}

	rated, err := s.companyService.Create(ctx, request.Name, request.Website, request.Scores)
	if err != nil {
		return fmt.Errorf("companyService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTCompany(rated))

	return nil
}

func (s CompanyServer) getCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := companyID(r)
	if err != nil {
		return err
	}

	rated, err := s.companyService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("companyService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCompany(rated))

	return nil
}

func (s CompanyServer) putCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := companyID(r)
	if err != nil {
		return err
	}

	var request rest.CompanyRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := validateScores(request.Scores); err != nil {
		return err
	}

	rated, err := s.companyService.Replace(ctx, id, request.Name, request.Website, request.Scores)
	if err != nil {
		return fmt.Errorf("companyService.Replace: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCompany(rated))

	return nil
}

func (s CompanyServer) deleteCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := companyID(r)
	if err != nil {
		return err
	}

	if err := s.companyService.Delete(ctx, id); err != nil {
		return fmt.Errorf("companyService.Delete: %w", err)
	}

	reply.OK(w)

	return nil
}

func companyID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return "", failure.NewInvalidArgumentError(
			"empty company id",
			failure.WithCode(errcodes.InvalidCompanyID),
			failure.WithDescription("Company id is required"),
		)
	}

	return id, nil
}

// validateScores rejects structurally broken score maps. Out-of-range values
// pass through on purpose; the aggregation is defined for them.
func validateScores(scores map[string]float64) error {
	for name := range scores {
		if name == "" {
			return failure.NewInvalidArgumentError(
				"empty indicator name in scores",
				failure.WithCode(errcodes.InvalidScores),
				failure.WithDescription("Score keys must be indicator names"),
			)
		}
	}

	return nil
}
