package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) ports.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query := `
		INSERT INTO companies (name, website, logo_url, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, website, logo_url, active, created_at
	`
	var created domain.Company
	err := r.db.QueryRowContext(ctx, query, company.Name, company.Website, company.LogoURL, company.Active).Scan(
		&created.ID, &created.Name, &created.Website, &created.LogoURL, &created.Active, &created.CreatedAt,
	)
	if err != nil {
		if mapped := mapCompanyInsertError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}
	return &created, nil
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `
		SELECT id, name, website, logo_url, active, created_at
		FROM companies
		WHERE id = $1
	`
	var company domain.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Website, &company.LogoURL, &company.Active, &company.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) ListActive(ctx context.Context) ([]domain.CompanyOption, error) {
	query := `
		SELECT id, name
		FROM companies
		WHERE active
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active companies: %w", err)
	}
	defer rows.Close()

	options := []domain.CompanyOption{}
	for rows.Next() {
		var opt domain.CompanyOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan company option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	return options, nil
}

func (r *companyRepository) ListWithVoteCounts(ctx context.Context) ([]domain.CompanyWithVotes, error) {
	query := `
		SELECT c.id, c.name, c.website, c.logo_url, c.active, c.created_at, COUNT(v.id) AS vote_count
		FROM companies c
		LEFT JOIN votes v ON v.company_id = c.id
		GROUP BY c.id
		ORDER BY c.active DESC, c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies with vote counts: %w", err)
	}
	defer rows.Close()

	companies := []domain.CompanyWithVotes{}
	for rows.Next() {
		var row domain.CompanyWithVotes
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Website, &row.LogoURL, &row.Active, &row.CreatedAt, &row.VoteCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	return companies, nil
}

func (r *companyRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Company, error) {
	query := `
		UPDATE companies
		SET active = $2
		WHERE id = $1
		RETURNING id, name, website, logo_url, active, created_at
	`
	var company domain.Company
	err := r.db.QueryRowContext(ctx, query, id, active).Scan(
		&company.ID, &company.Name, &company.Website, &company.LogoURL, &company.Active, &company.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update company active flag: %w", err)
	}
	return &company, nil
}
