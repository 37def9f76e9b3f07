package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type companyService struct {
	repo ports.CompanyRepository
}

func NewCompanyService(repo ports.CompanyRepository) ports.CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) ListActive(ctx context.Context) ([]domain.CompanyOption, error) {
	return s.repo.ListActive(ctx)
}

func (s *companyService) ListAll(ctx context.Context) ([]domain.CompanyWithVotes, error) {
	return s.repo.ListWithVoteCounts(ctx)
}

func (s *companyService) Add(ctx context.Context, input ports.AddCompanyInput) (*domain.Company, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrCompanyNameRequired
	}

	company := &domain.Company{
		Name:   name,
		Active: true,
	}

	if website := strings.TrimSpace(input.Website); website != "" {
		company.Website = &website
		logo := logoURLFor(website)
		company.LogoURL = &logo
	}

	return s.repo.Create(ctx, company)
}

func (s *companyService) Deactivate(ctx context.Context, id int64) (*domain.Company, error) {
	return s.repo.SetActive(ctx, id, false)
}

func (s *companyService) Reactivate(ctx context.Context, id int64) (*domain.Company, error) {
	return s.repo.SetActive(ctx, id, true)
}

// logoURLFor derives a deterministic logo-service URL from the website's
// hostname. Accepts bare hosts ("acme.com") as well as full URLs.
func logoURLFor(website string) string {
	host := website
	if u, err := url.Parse(website); err == nil && u.Host != "" {
		host = u.Host
	}
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	return "https://logo.clearbit.com/" + host
}
