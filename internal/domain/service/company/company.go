// Package company implements the application service around company records:
// creation, full-replacement updates, deletion and the leaderboard. Derived
// ratings are recomputed from raw scores on every read; the caches below are
// strictly derivative and never authoritative.
package company

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"dri_index/internal/domain"
	"dri_index/internal/domain/entity"
	"dri_index/internal/domain/service/catalog"
	"dri_index/internal/domain/service/scoring"
	"dri_index/pkg/errcodes"
)

const (
	leaderboardCacheKey = "leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

type Repository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Replace(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}

// ScorecardCache is an optional write-through cache for computed scorecards,
// keyed by company id plus a snapshot hash of the raw scores. Implementations
// must fail open: a miss or a broken backend only costs a recomputation.
type ScorecardCache interface {
	Get(ctx context.Context, key string) (entity.Scorecard, bool)
	Set(ctx context.Context, key string, card entity.Scorecard)
}

// Rated is a company together with its derived ratings.
type Rated struct {
	Company   entity.Company
	Scorecard entity.Scorecard
}

type Service struct {
	repo           Repository
	catalog        *catalog.Catalog
	scorecards     ScorecardCache
	leaderboard    *cache.Cache
	leaderboardTTL time.Duration
}

func NewService(repo Repository, cat *catalog.Catalog) *Service {
	return &Service{
		repo:           repo,
		catalog:        cat,
		leaderboard:    cache.New(leaderboardCacheTTL, time.Minute),
		leaderboardTTL: leaderboardCacheTTL,
	}
}

// WithScorecardCache attaches a scorecard cache. Without one every read
// recomputes, which is cheap and always correct.
func (s *Service) WithScorecardCache(scorecards ScorecardCache) *Service {
	s.scorecards = scorecards
	return s
}

func (s *Service) WithLeaderboardTTL(ttl time.Duration) *Service {
	s.leaderboardTTL = ttl
	return s
}

func (s *Service) Create(ctx context.Context, name, website string, scores map[string]float64) (Rated, error) {
	if scores == nil {
		scores = map[string]float64{}
	}

	company := &entity.Company{
		ID:      xid.New().String(),
		Name:    name,
		Website: website,
		Scores:  scores,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return Rated{}, fmt.Errorf("repo.Create: %w", err)
	}

	s.leaderboard.Delete(leaderboardCacheKey)

	return s.rate(ctx, company), nil
}

func (s *Service) Get(ctx context.Context, id string) (Rated, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Rated{}, s.mapNotFound(err, "repo.GetByID")
	}

	return s.rate(ctx, company), nil
}

// Leaderboard returns every company with derived ratings, sorted by overall
// score descending. The sorted result is memoized for a short TTL; the worker
// package keeps it warm between requests.
func (s *Service) Leaderboard(ctx context.Context) ([]Rated, error) {
	if cached, ok := s.leaderboard.Get(leaderboardCacheKey); ok {
		return cached.([]Rated), nil
	}

	return s.RefreshLeaderboard(ctx)
}

// RefreshLeaderboard recomputes the leaderboard bypassing the memo and stores
// the fresh result.
func (s *Service) RefreshLeaderboard(ctx context.Context) ([]Rated, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	rated := make([]Rated, 0, len(companies))
	for _, company := range companies {
		rated = append(rated, s.rate(ctx, company))
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Scorecard.Overall > rated[j].Scorecard.Overall
	})

	s.leaderboard.Set(leaderboardCacheKey, rated, s.leaderboardTTL)

	return rated, nil
}

func (s *Service) Replace(ctx context.Context, id, name, website string, scores map[string]float64) (Rated, error) {
	if scores == nil {
		scores = map[string]float64{}
	}

	company := &entity.Company{
		ID:      id,
		Name:    name,
		Website: website,
		Scores:  scores,
	}

	if err := s.repo.Replace(ctx, company); err != nil {
		return Rated{}, s.mapNotFound(err, "repo.Replace")
	}

	s.leaderboard.Delete(leaderboardCacheKey)

	return s.rate(ctx, company), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapNotFound(err, "repo.Delete")
	}

	s.leaderboard.Delete(leaderboardCacheKey)

	return nil
}

// rate attaches the derived scorecard, going through the scorecard cache
// when one is configured.
func (s *Service) rate(ctx context.Context, company *entity.Company) Rated {
	key := scorecardKey(company.ID, company.Scores)

	if s.scorecards != nil {
		if card, ok := s.scorecards.Get(ctx, key); ok {
			return Rated{Company: *company, Scorecard: card}
		}
	}

	card := scoring.Aggregate(company.Scores, s.catalog.Definitions())

	if s.scorecards != nil {
		s.scorecards.Set(ctx, key, card)
	}

	return Rated{Company: *company, Scorecard: card}
}

func (s *Service) mapNotFound(err error, op string) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Code == errcodes.CompanyNotFound {
		return failure.NewNotFoundErrorFromError(
			fmt.Errorf("%s: %w", op, err),
			failure.WithCode(errcodes.CompanyNotFound),
		)
	}

	return fmt.Errorf("%s: %w", op, err)
}
