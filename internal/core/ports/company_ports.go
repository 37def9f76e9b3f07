package ports

import (
	"context"

	"github.com/companyvote/api/internal/core/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	ListActive(ctx context.Context) ([]domain.CompanyOption, error)
	ListWithVoteCounts(ctx context.Context) ([]domain.CompanyWithVotes, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Company, error)
}

type AddCompanyInput struct {
	Name    string
	Website string
}

type CompanyService interface {
	ListActive(ctx context.Context) ([]domain.CompanyOption, error)
	ListAll(ctx context.Context) ([]domain.CompanyWithVotes, error)
	Add(ctx context.Context, input AddCompanyInput) (*domain.Company, error)
	Deactivate(ctx context.Context, id int64) (*domain.Company, error)
	Reactivate(ctx context.Context, id int64) (*domain.Company, error)
}
