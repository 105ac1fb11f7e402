package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"dri_index/internal/domain"
	"dri_index/internal/domain/entity"
	"dri_index/pkg/errcodes"
)

type CompanyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		scores, err := json.Marshal(company.Scores)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal scores")
		}

		now := time.Now()
		if company.CreatedAt.IsZero() {
			company.CreatedAt = now
		}
		company.UpdatedAt = now

		query := `
			INSERT INTO companies (id, name, website, scores, created_at, updated_at)
			VALUES (:id, :name, :website, :scores, :created_at, :updated_at)`

		params := map[string]any{
			"id":         company.ID,
			"name":       company.Name,
			"website":    company.Website,
			"scores":     scores,
			"created_at": company.CreatedAt,
			"updated_at": company.UpdatedAt,
		}

		if _, err := tx.NamedExecContext(ctx, query, params); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert company")
		}
		return nil
	})
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT id, name, website, scores, created_at, updated_at FROM companies WHERE id = $1`

	var schema companySchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.CompanyNotFound, "company not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get company")
	}

	return schema.toDomain()
}

func (r *CompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT id, name, website, scores, created_at, updated_at FROM companies ORDER BY created_at ASC`

	var schemas []companySchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(schemas))
	for _, s := range schemas {
		company, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert company")
		}
		companies = append(companies, company)
	}

	return companies, nil
}

// Replace overwrites a company's name, website and the full scores map.
// Partial score edits are not supported; evaluations are resubmitted whole.
func (r *CompanyRepository) Replace(ctx context.Context, company *entity.Company) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		scores, err := json.Marshal(company.Scores)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal scores")
		}

		company.UpdatedAt = time.Now()

		query := `
			UPDATE companies
			SET name = $1, website = $2, scores = $3, updated_at = $4
			WHERE id = $5`

		res, err := tx.ExecContext(ctx, query, company.Name, company.Website, scores, company.UpdatedAt, company.ID)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update company")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}
		if rows == 0 {
			return domain.NewError(errcodes.CompanyNotFound, "company not found")
		}
		return nil
	})
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to delete company")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}
		if rows == 0 {
			return domain.NewError(errcodes.CompanyNotFound, "company not found")
		}
		return nil
	})
}
