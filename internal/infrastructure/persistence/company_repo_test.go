package persistence_test

import (
	"context"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"dri_index/internal/domain"
	"dri_index/internal/domain/entity"
	"dri_index/internal/infrastructure/persistence"
	"dri_index/pkg/dbtest"
	"dri_index/pkg/errcodes"
	"dri_index/pkg/tests"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/0001_init.sql"))

	return db
}

func TestCompanyRepositoryLifecycle(t *testing.T) {
	rq := require.New(t)
	repo := persistence.NewCompanyRepository(testDB(t))
	random := tests.NewRandomizer()
	ctx := context.Background()

	company := &entity.Company{
		ID:      xid.New().String(),
		Name:    "ACME",
		Website: "https://acme.example",
		Scores: map[string]float64{
			"Privacy policy": random.Float64() * 5,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	rq.NoError(repo.Create(ctx, company))

	fetched, err := repo.GetByID(ctx, company.ID)
	rq.NoError(err)
	rq.Equal(company.Name, fetched.Name)
	rq.Equal(company.Scores, fetched.Scores)

	company.Name = "ACME Corp"
	company.Scores["Security training"] = 2
	rq.NoError(repo.Replace(ctx, company))

	fetched, err = repo.GetByID(ctx, company.ID)
	rq.NoError(err)
	rq.Equal("ACME Corp", fetched.Name)
	rq.Len(fetched.Scores, 2)

	listed, err := repo.List(ctx)
	rq.NoError(err)
	rq.NotEmpty(listed)

	rq.NoError(repo.Delete(ctx, company.ID))

	_, err = repo.GetByID(ctx, company.ID)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CompanyNotFound, code)
}

func TestFeedbackRepositoryCreateAndList(t *testing.T) {
	rq := require.New(t)
	repo := persistence.NewFeedbackRepository(testDB(t))
	ctx := context.Background()

	route := "/company/" + xid.New().String()

	feedback := &entity.Feedback{
		ID:           xid.New().String(),
		SessionID:    "sess-1",
		Route:        route,
		FeedbackType: entity.FeedbackTypeGeneral,
		Message:      "the legend wording is unclear",
		Consent:      true,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	rq.NoError(repo.Create(ctx, feedback))

	listed, err := repo.List(ctx, persistence.FeedbackFilter{Route: route, Limit: 10})
	rq.NoError(err)
	rq.Len(listed, 1)
	rq.Equal(feedback.Message, listed[0].Message)
	rq.Equal(feedback.SessionID, listed[0].SessionID)
}
